package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizService manages tests, their question links and recorded scores.
type QuizService interface {
	CreateTest(req dto.TestCreateRequest) (*dto.TestResponse, error)
	GetTest(id uint) (*dto.TestResponse, error)
	ListTests(skip, limit int) ([]dto.TestResponse, error)
	UpdateTest(id uint, req dto.TestCreateRequest) (*dto.TestResponse, error)

	AddQuestion(testID, questionID uint) (*dto.TestQuestionResponse, error)
	ListQuestions(testID uint) ([]dto.QuestionResponse, error)
	RemoveQuestion(testID, questionID uint) error

	RecordScore(userID uint, req dto.TestScoreCreateRequest) (*dto.TestScoreResponse, error)
	ListScoresByUser(userID uint) ([]dto.TestScoreResponse, error)
	ListScoresByTest(testID uint) ([]dto.TestScoreResponse, error)
	LatestScore(userID, testID uint) (*dto.TestScoreResponse, error)
}

type quizService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	scoreRepo    repository.ScoreRepository
	questions    QuestionService
}

func NewQuizService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	scoreRepo repository.ScoreRepository,
	questions QuestionService,
) QuizService {
	return &quizService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		scoreRepo:    scoreRepo,
		questions:    questions,
	}
}

func (s *quizService) CreateTest(req dto.TestCreateRequest) (*dto.TestResponse, error) {
	test := model.Test{Name: req.Name}
	if err := s.testRepo.Create(&test); err != nil {
		return nil, fmt.Errorf("failed to create test: %w", err)
	}
	log.Info().Uint("testID", test.ID).Str("name", test.Name).Msg("Test created")
	return &dto.TestResponse{ID: test.ID, Name: test.Name}, nil
}

func (s *quizService) GetTest(id uint) (*dto.TestResponse, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.TestResponse{ID: test.ID, Name: test.Name}, nil
}

func (s *quizService) ListTests(skip, limit int) ([]dto.TestResponse, error) {
	tests, err := s.testRepo.FindAll(skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}
	out := make([]dto.TestResponse, 0, len(tests))
	for _, t := range tests {
		out = append(out, dto.TestResponse{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

func (s *quizService) UpdateTest(id uint, req dto.TestCreateRequest) (*dto.TestResponse, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	test.Name = req.Name
	if err := s.testRepo.Update(test); err != nil {
		return nil, fmt.Errorf("failed to update test: %w", err)
	}
	return &dto.TestResponse{ID: test.ID, Name: test.Name}, nil
}

func (s *quizService) AddQuestion(testID, questionID uint) (*dto.TestQuestionResponse, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return nil, err
	}
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		return nil, err
	}
	if _, err := s.testRepo.FindLink(testID, questionID); err == nil {
		return nil, ErrDuplicateLink
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check link: %w", err)
	}

	link := model.TestQuestion{TestID: testID, QuestionID: questionID}
	if err := s.testRepo.AddLink(&link); err != nil {
		return nil, fmt.Errorf("failed to link question: %w", err)
	}
	return &dto.TestQuestionResponse{ID: link.ID, TestID: testID, QuestionID: questionID}, nil
}

func (s *quizService) ListQuestions(testID uint) ([]dto.QuestionResponse, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return nil, err
	}
	links, err := s.testRepo.LinksByTest(testID)
	if err != nil {
		return nil, fmt.Errorf("failed to load test questions: %w", err)
	}
	out := make([]dto.QuestionResponse, 0, len(links))
	for _, link := range links {
		question, err := s.questions.GetByID(link.QuestionID)
		if err != nil {
			return nil, err
		}
		out = append(out, *question)
	}
	return out, nil
}

func (s *quizService) RemoveQuestion(testID, questionID uint) error {
	link, err := s.testRepo.FindLink(testID, questionID)
	if err != nil {
		return err
	}
	return s.testRepo.DeleteLink(link.ID)
}

func (s *quizService) RecordScore(userID uint, req dto.TestScoreCreateRequest) (*dto.TestScoreResponse, error) {
	if _, err := s.testRepo.FindByID(req.TestID); err != nil {
		return nil, err
	}
	score := model.TestScore{
		UserID: userID,
		TestID: req.TestID,
		Score:  fmt.Sprintf("%d/%d", req.CorrectAnswers, req.TotalQuestions),
		Date:   time.Now(),
	}
	if err := s.scoreRepo.Create(&score); err != nil {
		return nil, fmt.Errorf("failed to record score: %w", err)
	}
	return scoreToResponse(&score), nil
}

func (s *quizService) ListScoresByUser(userID uint) ([]dto.TestScoreResponse, error) {
	scores, err := s.scoreRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	return scoresToResponses(scores), nil
}

func (s *quizService) ListScoresByTest(testID uint) ([]dto.TestScoreResponse, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return nil, err
	}
	scores, err := s.scoreRepo.ListByTest(testID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	return scoresToResponses(scores), nil
}

func (s *quizService) LatestScore(userID, testID uint) (*dto.TestScoreResponse, error) {
	score, err := s.scoreRepo.LatestByUserAndTest(userID, testID)
	if err != nil {
		return nil, err
	}
	return scoreToResponse(score), nil
}

func scoreToResponse(score *model.TestScore) *dto.TestScoreResponse {
	return &dto.TestScoreResponse{
		ID:     score.ID,
		UserID: score.UserID,
		TestID: score.TestID,
		Score:  score.Score,
		Date:   score.Date,
	}
}

func scoresToResponses(scores []model.TestScore) []dto.TestScoreResponse {
	out := make([]dto.TestScoreResponse, 0, len(scores))
	for i := range scores {
		out = append(out, *scoreToResponse(&scores[i]))
	}
	return out
}
