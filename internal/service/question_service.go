package service

import (
	"fmt"

	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuestionService manages questions together with their answer options.
// Options are created, edited and removed through the question they belong
// to; the controller never addresses an option on its own.
type QuestionService interface {
	Create(req dto.QuestionCreateRequest) (*dto.QuestionResponse, error)
	GetByID(id uint) (*dto.QuestionResponse, error)
	List(skip, limit int, questionTypeID *uint) ([]dto.QuestionResponse, error)
	Update(id uint, req dto.QuestionUpdateRequest) (*dto.QuestionResponse, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	typeRepo     repository.QuestionTypeRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, typeRepo repository.QuestionTypeRepository) QuestionService {
	return &questionService{questionRepo: questionRepo, typeRepo: typeRepo}
}

func (s *questionService) Create(req dto.QuestionCreateRequest) (*dto.QuestionResponse, error) {
	if _, err := s.typeRepo.FindByID(req.QuestionTypeID); err != nil {
		return nil, fmt.Errorf("question type %d: %w", req.QuestionTypeID, err)
	}

	question := model.Question{Name: req.Name, QuestionTypeID: req.QuestionTypeID}
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	for _, a := range req.Answers {
		if _, err := s.createOption(question.ID, a); err != nil {
			return nil, err
		}
	}

	log.Info().Uint("questionID", question.ID).Msg("Question created")
	return s.GetByID(question.ID)
}

func (s *questionService) GetByID(id uint) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	answers, err := s.optionsOf(id)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionResponse{
		ID:             question.ID,
		Name:           question.Name,
		QuestionTypeID: question.QuestionTypeID,
		Answers:        answers,
	}, nil
}

func (s *questionService) List(skip, limit int, questionTypeID *uint) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindAll(skip, limit, questionTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		answers, err := s.optionsOf(q.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.QuestionResponse{
			ID:             q.ID,
			Name:           q.Name,
			QuestionTypeID: q.QuestionTypeID,
			Answers:        answers,
		})
	}
	return out, nil
}

// Update edits the question row and, when Answers is present, reconciles
// the option set: inputs with an id update that option, inputs without an
// id become new options, and existing options missing from the list are
// dropped together with their link rows.
func (s *questionService) Update(id uint, req dto.QuestionUpdateRequest) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		question.Name = *req.Name
	}
	if req.QuestionTypeID != nil {
		if _, err := s.typeRepo.FindByID(*req.QuestionTypeID); err != nil {
			return nil, fmt.Errorf("question type %d: %w", *req.QuestionTypeID, err)
		}
		question.QuestionTypeID = *req.QuestionTypeID
	}
	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	if req.Answers != nil {
		if err := s.reconcileOptions(id, *req.Answers); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *questionService) reconcileOptions(questionID uint, inputs []dto.AnswerOptionInput) error {
	links, err := s.questionRepo.LinksByQuestion(questionID)
	if err != nil {
		return fmt.Errorf("failed to load answer links: %w", err)
	}
	linkByOption := make(map[uint]model.QuestionAnswer, len(links))
	for _, l := range links {
		linkByOption[l.AnswerID] = l
	}

	kept := make(map[uint]bool, len(inputs))
	for _, input := range inputs {
		if input.ID == nil {
			option, err := s.createOption(questionID, input)
			if err != nil {
				return err
			}
			kept[option.ID] = true
			continue
		}
		if _, linked := linkByOption[*input.ID]; !linked {
			return fmt.Errorf("answer option %d does not belong to question %d", *input.ID, questionID)
		}
		option, err := s.questionRepo.FindOption(*input.ID)
		if err != nil {
			return fmt.Errorf("answer option %d: %w", *input.ID, err)
		}
		option.Name = input.Name
		option.IsCorrect = input.IsCorrect
		if err := s.questionRepo.UpdateOption(option); err != nil {
			return fmt.Errorf("failed to update answer option: %w", err)
		}
		kept[option.ID] = true
	}

	for optionID, link := range linkByOption {
		if kept[optionID] {
			continue
		}
		if err := s.questionRepo.DeleteLink(link.ID); err != nil {
			return fmt.Errorf("failed to delete answer link: %w", err)
		}
		if err := s.questionRepo.DeleteOption(optionID); err != nil {
			return fmt.Errorf("failed to delete answer option: %w", err)
		}
	}
	return nil
}

func (s *questionService) createOption(questionID uint, input dto.AnswerOptionInput) (*model.AnswerOption, error) {
	option := model.AnswerOption{Name: input.Name, IsCorrect: input.IsCorrect}
	if err := s.questionRepo.CreateOption(&option); err != nil {
		return nil, fmt.Errorf("failed to create answer option: %w", err)
	}
	link := model.QuestionAnswer{QuestionID: questionID, AnswerID: option.ID}
	if err := s.questionRepo.CreateLink(&link); err != nil {
		return nil, fmt.Errorf("failed to link answer option: %w", err)
	}
	return &option, nil
}

func (s *questionService) optionsOf(questionID uint) ([]dto.AnswerOptionResponse, error) {
	links, err := s.questionRepo.LinksByQuestion(questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answer links: %w", err)
	}
	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.AnswerID)
	}
	options, err := s.questionRepo.FindOptionsByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load answer options: %w", err)
	}
	out := make([]dto.AnswerOptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, dto.AnswerOptionResponse{ID: o.ID, Name: o.Name, IsCorrect: o.IsCorrect})
	}
	return out, nil
}
