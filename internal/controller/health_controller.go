package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Zooracle/internal/dto"
	"gorm.io/gorm"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

func (c *HealthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/health", c.Health)
	router.GET("/api/db-status", c.DBStatus)
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
}

// DBStatus godoc
// @Summary Database connectivity check
// @Tags health
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/db-status [get]
func (c *HealthController) DBStatus(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	if err := sqlDB.PingContext(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "database is reachable"})
}
