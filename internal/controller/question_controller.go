package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/middleware"
	"github.com/lshigami/Zooracle/internal/service"
)

type QuestionController struct {
	authSvc     service.AuthService
	questionSvc service.QuestionService
	deletionSvc service.DeletionService
}

func NewQuestionController(authSvc service.AuthService, questionSvc service.QuestionService, deletionSvc service.DeletionService) *QuestionController {
	return &QuestionController{authSvc: authSvc, questionSvc: questionSvc, deletionSvc: deletionSvc}
}

func (c *QuestionController) RegisterRoutes(router *gin.Engine) {
	requireAuth := middleware.RequireAuth(c.authSvc)

	questions := router.Group("/api/questions")
	questions.POST("", requireAuth, c.Create)
	questions.GET("", c.List)
	questions.GET("/:id", c.Get)
	questions.PUT("/:id", requireAuth, c.Update)
	questions.DELETE("/:id", requireAuth, c.Delete)
}

// Create godoc
// @Summary Create a question with its answer options
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown question type"
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req dto.QuestionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	question, err := c.questionSvc.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// List godoc
// @Summary List questions
// @Tags questions
// @Produce json
// @Param question_type_id query int false "Filter by question type"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} dto.QuestionResponse
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	skip, limit := skipLimit(ctx)
	var questionTypeID *uint
	if raw := ctx.Query("question_type_id"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid question_type_id parameter"})
			return
		}
		id := uint(value)
		questionTypeID = &id
	}
	questions, err := c.questionSvc.List(skip, limit, questionTypeID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// Get godoc
// @Summary Get a question with its answer options
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	question, err := c.questionSvc.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// Update godoc
// @Summary Update a question and reconcile its answer options
// @Description Options with an id are edited, options without one are added, and existing options missing from the list are removed.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param question body dto.QuestionUpdateRequest true "Fields to change"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	question, err := c.questionSvc.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// Delete godoc
// @Summary Delete a question with its options and links
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.deletionSvc.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
