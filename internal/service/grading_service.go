package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
)

// GradingService checks a quiz submission against its stored answers.
type GradingService interface {
	CheckTest(testID uint, req dto.CheckTestRequest) (*dto.CheckTestResponse, error)
}

type gradingService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
}

func NewGradingService(testRepo repository.TestRepository, questionRepo repository.QuestionRepository) GradingService {
	return &gradingService{testRepo: testRepo, questionRepo: questionRepo}
}

func (s *gradingService) CheckTest(testID uint, req dto.CheckTestRequest) (*dto.CheckTestResponse, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return nil, err
	}
	links, err := s.testRepo.LinksByTest(testID)
	if err != nil {
		return nil, fmt.Errorf("failed to load test questions: %w", err)
	}
	if len(links) == 0 {
		return nil, ErrNoQuestions
	}

	submitted := make(map[uint]dto.SubmittedAnswer, len(req.Answers))
	for _, a := range req.Answers {
		submitted[a.QuestionID] = a
	}

	resp := dto.CheckTestResponse{
		Total:   len(links),
		Results: make([]dto.QuestionCheckResult, 0, len(links)),
	}
	for _, link := range links {
		question, err := s.questionRepo.FindByID(link.QuestionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load question %d: %w", link.QuestionID, err)
		}
		// A question with no submitted answer is wrong outright.
		var correct bool
		if answer, answered := submitted[question.ID]; answered {
			correct, err = s.checkQuestion(question, answer)
			if err != nil {
				return nil, err
			}
		}
		if correct {
			resp.Correct++
		}
		resp.Results = append(resp.Results, dto.QuestionCheckResult{
			QuestionID: question.ID,
			Correct:    correct,
		})
	}
	resp.Score = int(math.Round(float64(resp.Correct) / float64(resp.Total) * 100))
	return &resp, nil
}

func (s *gradingService) checkQuestion(question *model.Question, answer dto.SubmittedAnswer) (bool, error) {
	options, err := s.correctOptions(question.ID)
	if err != nil {
		return false, err
	}
	return gradeQuestion(question.QuestionTypeID, options, answer), nil
}

func (s *gradingService) correctOptions(questionID uint) ([]model.AnswerOption, error) {
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
	correct := options[:0]
	for _, o := range options {
		if o.IsCorrect {
			correct = append(correct, o)
		}
	}
	return correct, nil
}

// gradeQuestion is pure: it never touches the database, which keeps the
// per-type rules easy to test in isolation.
func gradeQuestion(questionTypeID uint, correct []model.AnswerOption, answer dto.SubmittedAnswer) bool {
	switch questionTypeID {
	case model.QuestionTypeFreeText:
		if len(correct) == 0 {
			return false
		}
		given := strings.ToLower(strings.TrimSpace(answer.Text))
		for _, o := range correct {
			if given == strings.ToLower(strings.TrimSpace(o.Name)) {
				return true
			}
		}
		return false
	case model.QuestionTypeSingleChoice:
		if len(answer.SelectedIDs) != 1 || len(correct) != 1 {
			return false
		}
		return answer.SelectedIDs[0] == correct[0].ID
	case model.QuestionTypeMultiChoice:
		if len(correct) == 0 {
			return false
		}
		want := make(map[uint]bool, len(correct))
		for _, o := range correct {
			want[o.ID] = true
		}
		seen := make(map[uint]bool, len(answer.SelectedIDs))
		for _, id := range answer.SelectedIDs {
			if !want[id] || seen[id] {
				return false
			}
			seen[id] = true
		}
		return len(seen) == len(want)
	default:
		return false
	}
}
