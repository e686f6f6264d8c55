package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/service"
	"gorm.io/gorm"
)

// uintParam parses a numeric path parameter; a 400 is written on failure
// and ok is false.
func uintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(value), true
}

func skipLimit(ctx *gin.Context) (int, int) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	return skip, limit
}

// respondError translates service errors into the HTTP status and the
// {"detail": ...} body the frontend expects.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Record not found"})
	case errors.Is(err, service.ErrDuplicateLogin),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrDuplicateLink),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidCode),
		errors.Is(err, service.ErrNoQuestions),
		errors.Is(err, service.ErrUnsupportedFileType):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, service.ErrFileTooLarge):
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Detail: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
	}
}
