package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/middleware"
	"github.com/lshigami/Zooracle/internal/service"
)

// LookupController serves the three name tables under /api/animal-types,
// /api/habitats and /api/question-types. Reads are public, writes are
// admin only.
type LookupController struct {
	authSvc         service.AuthService
	animalTypeSvc   service.AnimalTypeService
	habitatSvc      service.HabitatService
	questionTypeSvc service.QuestionTypeService
}

func NewLookupController(
	authSvc service.AuthService,
	animalTypeSvc service.AnimalTypeService,
	habitatSvc service.HabitatService,
	questionTypeSvc service.QuestionTypeService,
) *LookupController {
	return &LookupController{
		authSvc:         authSvc,
		animalTypeSvc:   animalTypeSvc,
		habitatSvc:      habitatSvc,
		questionTypeSvc: questionTypeSvc,
	}
}

func (c *LookupController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	c.registerLookup(api, "/animal-types", c.animalTypeSvc)
	c.registerLookup(api, "/habitats", c.habitatSvc)
	c.registerLookup(api, "/question-types", c.questionTypeSvc)

	// The frontend also reads question types from the questions group.
	api.GET("/questions/types", func(ctx *gin.Context) {
		skip, limit := skipLimit(ctx)
		rows, err := c.questionTypeSvc.List(skip, limit)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, rows)
	})
}

type lookupCRUD interface {
	Create(req dto.LookupCreateRequest) (*dto.LookupResponse, error)
	GetByID(id uint) (*dto.LookupResponse, error)
	List(skip, limit int) ([]dto.LookupResponse, error)
	Update(id uint, req dto.LookupCreateRequest) (*dto.LookupResponse, error)
	Delete(id uint) error
}

func (c *LookupController) registerLookup(api *gin.RouterGroup, path string, svc lookupCRUD) {
	requireAuth := middleware.RequireAuth(c.authSvc)
	requireAdmin := middleware.RequireAdmin()

	group := api.Group(path)
	group.GET("", func(ctx *gin.Context) {
		skip, limit := skipLimit(ctx)
		rows, err := svc.List(skip, limit)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, rows)
	})
	group.GET("/:id", func(ctx *gin.Context) {
		id, ok := uintParam(ctx, "id")
		if !ok {
			return
		}
		row, err := svc.GetByID(id)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, row)
	})
	group.POST("", requireAuth, requireAdmin, func(ctx *gin.Context) {
		var req dto.LookupCreateRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
			return
		}
		row, err := svc.Create(req)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, row)
	})
	group.PUT("/:id", requireAuth, requireAdmin, func(ctx *gin.Context) {
		id, ok := uintParam(ctx, "id")
		if !ok {
			return
		}
		var req dto.LookupCreateRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
			return
		}
		row, err := svc.Update(id, req)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, row)
	})
	group.DELETE("/:id", requireAuth, requireAdmin, func(ctx *gin.Context) {
		id, ok := uintParam(ctx, "id")
		if !ok {
			return
		}
		if err := svc.Delete(id); err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Record deleted"})
	})
}
