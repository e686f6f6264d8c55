package service

import (
	"testing"
	"time"

	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizFixture(t *testing.T) (QuizService, QuestionService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.QuestionType{ID: model.QuestionTypeSingleChoice, Name: "Single choice"}).Error)

	questionSvc := NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewQuestionTypeRepository(db),
	)
	quizSvc := NewQuizService(
		repository.NewTestRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewScoreRepository(db),
		questionSvc,
	)
	return quizSvc, questionSvc, db
}

func TestQuizQuestionLinks(t *testing.T) {
	quizSvc, questionSvc, _ := newQuizFixture(t)

	quiz, err := quizSvc.CreateTest(dto.TestCreateRequest{Name: "Birds"})
	require.NoError(t, err)
	question, err := questionSvc.Create(dto.QuestionCreateRequest{
		Name:           "Can penguins fly?",
		QuestionTypeID: model.QuestionTypeSingleChoice,
		Answers:        []dto.AnswerOptionInput{{Name: "No", IsCorrect: true}},
	})
	require.NoError(t, err)

	link, err := quizSvc.AddQuestion(quiz.ID, question.ID)
	require.NoError(t, err)
	assert.Equal(t, quiz.ID, link.TestID)

	_, err = quizSvc.AddQuestion(quiz.ID, question.ID)
	assert.ErrorIs(t, err, ErrDuplicateLink)

	questions, err := quizSvc.ListQuestions(quiz.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Can penguins fly?", questions[0].Name)
	require.Len(t, questions[0].Answers, 1)

	require.NoError(t, quizSvc.RemoveQuestion(quiz.ID, question.ID))
	questions, err = quizSvc.ListQuestions(quiz.ID)
	require.NoError(t, err)
	assert.Empty(t, questions)

	// The question itself survives the unlink.
	_, err = questionSvc.GetByID(question.ID)
	assert.NoError(t, err)
}

func TestRecordScoreFormat(t *testing.T) {
	quizSvc, _, db := newQuizFixture(t)

	quiz, err := quizSvc.CreateTest(dto.TestCreateRequest{Name: "Birds"})
	require.NoError(t, err)
	user := model.User{Login: "visitor", Email: "v@zoo.example", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	score, err := quizSvc.RecordScore(user.ID, dto.TestScoreCreateRequest{
		TestID:         quiz.ID,
		CorrectAnswers: 3,
		TotalQuestions: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "3/5", score.Score)
	assert.False(t, score.Date.IsZero())

	scores, err := quizSvc.ListScoresByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "3/5", scores[0].Score)
}

func TestLatestScorePicksNewest(t *testing.T) {
	quizSvc, _, db := newQuizFixture(t)

	quiz, err := quizSvc.CreateTest(dto.TestCreateRequest{Name: "Birds"})
	require.NoError(t, err)
	user := model.User{Login: "visitor", Email: "v@zoo.example", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	_, err = quizSvc.LatestScore(user.ID, quiz.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	old := model.TestScore{UserID: user.ID, TestID: quiz.ID, Score: "1/5", Date: time.Now().Add(-time.Hour)}
	require.NoError(t, db.Create(&old).Error)
	_, err = quizSvc.RecordScore(user.ID, dto.TestScoreCreateRequest{
		TestID:         quiz.ID,
		CorrectAnswers: 4,
		TotalQuestions: 5,
	})
	require.NoError(t, err)

	latest, err := quizSvc.LatestScore(user.ID, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "4/5", latest.Score)
}

func TestRecordScoreUnknownTest(t *testing.T) {
	quizSvc, _, _ := newQuizFixture(t)

	_, err := quizSvc.RecordScore(1, dto.TestScoreCreateRequest{TestID: 42, TotalQuestions: 5})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
