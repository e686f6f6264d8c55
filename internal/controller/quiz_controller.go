package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/middleware"
	"github.com/lshigami/Zooracle/internal/service"
)

type QuizController struct {
	authSvc     service.AuthService
	quizSvc     service.QuizService
	gradingSvc  service.GradingService
	deletionSvc service.DeletionService
}

func NewQuizController(
	authSvc service.AuthService,
	quizSvc service.QuizService,
	gradingSvc service.GradingService,
	deletionSvc service.DeletionService,
) *QuizController {
	return &QuizController{
		authSvc:     authSvc,
		quizSvc:     quizSvc,
		gradingSvc:  gradingSvc,
		deletionSvc: deletionSvc,
	}
}

func (c *QuizController) RegisterRoutes(router *gin.Engine) {
	requireAuth := middleware.RequireAuth(c.authSvc)
	requireAdmin := middleware.RequireAdmin()

	api := router.Group("/api")
	{
		tests := api.Group("/tests")
		tests.POST("", requireAuth, requireAdmin, c.CreateTest)
		tests.GET("", c.ListTests)
		tests.GET("/:id", c.GetTest)
		tests.PUT("/:id", requireAuth, requireAdmin, c.UpdateTest)
		tests.DELETE("/:id", requireAuth, requireAdmin, c.DeleteTest)
		tests.POST("/:id/questions", requireAuth, requireAdmin, c.AddQuestion)
		tests.GET("/:id/questions", c.ListQuestions)
		tests.DELETE("/:id/questions/:question_id", requireAuth, requireAdmin, c.RemoveQuestion)
		tests.POST("/:id/check", requireAuth, c.CheckTest)
		tests.GET("/:id/scores", requireAuth, requireAdmin, c.ListTestScores)

		scores := api.Group("/test-scores", requireAuth)
		scores.POST("", c.RecordScore)
		scores.GET("", c.ListMyScores)
		scores.GET("/:test_id", c.GetMyLatestScore)
	}
}

// CreateTest godoc
// @Summary (Admin) Create a quiz
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test body dto.TestCreateRequest true "Test data"
// @Success 201 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tests [post]
func (c *QuizController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	test, err := c.quizSvc.CreateTest(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, test)
}

// ListTests godoc
// @Summary List quizzes
// @Tags tests
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} dto.TestResponse
// @Router /api/tests [get]
func (c *QuizController) ListTests(ctx *gin.Context) {
	skip, limit := skipLimit(ctx)
	tests, err := c.quizSvc.ListTests(skip, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTest godoc
// @Summary Get a quiz
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tests/{id} [get]
func (c *QuizController) GetTest(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	test, err := c.quizSvc.GetTest(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// UpdateTest godoc
// @Summary (Admin) Rename a quiz
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param test body dto.TestCreateRequest true "New name"
// @Success 200 {object} dto.TestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tests/{id} [put]
func (c *QuizController) UpdateTest(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.TestCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	test, err := c.quizSvc.UpdateTest(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// DeleteTest godoc
// @Summary (Admin) Delete a quiz with its questions and scores
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tests/{id} [delete]
func (c *QuizController) DeleteTest(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.deletionSvc.DeleteTest(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test deleted"})
}

// AddQuestion godoc
// @Summary (Admin) Link an existing question to a quiz
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param question body dto.TestQuestionCreateRequest true "Question id"
// @Success 201 {object} dto.TestQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 400 {object} dto.ErrorResponse "Question already linked"
// @Router /api/tests/{id}/questions [post]
func (c *QuizController) AddQuestion(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.TestQuestionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	link, err := c.quizSvc.AddQuestion(id, req.QuestionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, link)
}

// ListQuestions godoc
// @Summary List a quiz's questions with their answer options
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tests/{id}/questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	questions, err := c.quizSvc.ListQuestions(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// RemoveQuestion godoc
// @Summary (Admin) Unlink a question from a quiz
// @Description Removes the link only; the question itself stays.
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tests/{id}/questions/{question_id} [delete]
func (c *QuizController) RemoveQuestion(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	questionID, ok := uintParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.quizSvc.RemoveQuestion(id, questionID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question removed from test"})
}

// CheckTest godoc
// @Summary Grade a quiz submission
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param answers body dto.CheckTestRequest true "Submitted answers"
// @Success 200 {object} dto.CheckTestResponse
// @Failure 400 {object} dto.ErrorResponse "Test has no questions"
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tests/{id}/check [post]
func (c *QuizController) CheckTest(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CheckTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	result, err := c.gradingSvc.CheckTest(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListTestScores godoc
// @Summary (Admin) List all scores of a quiz
// @Tags scores
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {array} dto.TestScoreResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tests/{id}/scores [get]
func (c *QuizController) ListTestScores(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	scores, err := c.quizSvc.ListScoresByTest(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, scores)
}

// RecordScore godoc
// @Summary Save the caller's quiz result
// @Tags scores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param score body dto.TestScoreCreateRequest true "Result data"
// @Success 201 {object} dto.TestScoreResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/test-scores [post]
func (c *QuizController) RecordScore(ctx *gin.Context) {
	var req dto.TestScoreCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	user := middleware.CurrentUser(ctx)
	score, err := c.quizSvc.RecordScore(user.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, score)
}

// ListMyScores godoc
// @Summary List the caller's quiz results, newest first
// @Tags scores
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TestScoreResponse
// @Router /api/test-scores [get]
func (c *QuizController) ListMyScores(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	scores, err := c.quizSvc.ListScoresByUser(user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, scores)
}

// GetMyLatestScore godoc
// @Summary Get the caller's most recent result for a test
// @Tags scores
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestScoreResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/test-scores/{test_id} [get]
func (c *QuizController) GetMyLatestScore(ctx *gin.Context) {
	testID, ok := uintParam(ctx, "test_id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)
	score, err := c.quizSvc.LatestScore(user.ID, testID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, score)
}
