package dto

import "time"

type TestCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type TestResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TestQuestionCreateRequest struct {
	QuestionID uint `json:"question_id" binding:"required"`
}

type TestQuestionResponse struct {
	ID         uint `json:"id"`
	TestID     uint `json:"test_id"`
	QuestionID uint `json:"question_id"`
}

// AnswerOptionInput is used both when creating and when updating a
// question. On update an ID selects an existing option to edit; options
// absent from the list are deleted together with their link rows.
type AnswerOptionInput struct {
	ID        *uint  `json:"id"`
	Name      string `json:"name" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionCreateRequest struct {
	Name           string              `json:"name" binding:"required"`
	QuestionTypeID uint                `json:"question_type_id" binding:"required"`
	Answers        []AnswerOptionInput `json:"answers" binding:"omitempty,dive"`
}

type QuestionUpdateRequest struct {
	Name           *string              `json:"name"`
	QuestionTypeID *uint                `json:"question_type_id"`
	Answers        *[]AnswerOptionInput `json:"answers"`
}

type AnswerOptionResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionResponse struct {
	ID             uint                   `json:"id"`
	Name           string                 `json:"name"`
	QuestionTypeID uint                   `json:"question_type_id"`
	Answers        []AnswerOptionResponse `json:"answers"`
}

// SubmittedAnswer carries one answer of a quiz submission. Text is used for
// free-text questions, SelectedIDs for choice questions.
type SubmittedAnswer struct {
	QuestionID  uint   `json:"question_id" binding:"required"`
	Text        string `json:"text"`
	SelectedIDs []uint `json:"selected_ids"`
}

type CheckTestRequest struct {
	Answers []SubmittedAnswer `json:"answers" binding:"required,dive"`
}

type QuestionCheckResult struct {
	QuestionID uint `json:"question_id"`
	Correct    bool `json:"correct"`
}

type CheckTestResponse struct {
	Total   int                   `json:"total"`
	Correct int                   `json:"correct"`
	Score   int                   `json:"score"` // rounded percentage
	Results []QuestionCheckResult `json:"results"`
}

type TestScoreCreateRequest struct {
	TestID         uint `json:"test_id" binding:"required"`
	CorrectAnswers int  `json:"correct_answers"`
	TotalQuestions int  `json:"total_questions" binding:"required"`
}

type TestScoreResponse struct {
	ID     uint      `json:"id"`
	UserID uint      `json:"user_id"`
	TestID uint      `json:"test_id"`
	Score  string    `json:"score"`
	Date   time.Time `json:"date"`
}
