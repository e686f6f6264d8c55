package controller

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/middleware"
	"github.com/lshigami/Zooracle/internal/service"
	"github.com/lshigami/Zooracle/internal/storage"
	"github.com/rs/zerolog/log"
)

type MediaController struct {
	authSvc  service.AuthService
	mediaSvc service.MediaService
}

func NewMediaController(authSvc service.AuthService, mediaSvc service.MediaService) *MediaController {
	return &MediaController{authSvc: authSvc, mediaSvc: mediaSvc}
}

func (c *MediaController) RegisterRoutes(router *gin.Engine) {
	media := router.Group("/api/media")
	media.POST("/upload", middleware.RequireAuth(c.authSvc), c.Upload)
	media.GET("/:file_id", c.Download)
}

// Upload godoc
// @Summary Upload an image or video
// @Description Accepts jpg, jpeg, png, webp up to 4 MB and mp4, avi up to 1 GB. Returns the opaque file id used in animal payloads.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} dto.MediaUploadResponse
// @Failure 400 {object} dto.ErrorResponse "Unsupported file type"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Router /api/media/upload [post]
func (c *MediaController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Missing file field"})
		return
	}
	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Cannot read uploaded file"})
		return
	}
	defer file.Close()

	resp, err := c.mediaSvc.Upload(ctx.Request.Context(), header.Filename, header.Size, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Download godoc
// @Summary Stream a stored file by its id
// @Tags media
// @Produce octet-stream
// @Param file_id path string true "File id returned by upload"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/media/{file_id} [get]
func (c *MediaController) Download(ctx *gin.Context) {
	fileID := ctx.Param("file_id")
	reader, contentType, size, err := c.mediaSvc.Fetch(ctx.Request.Context(), fileID)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "File not found"})
			return
		}
		respondError(ctx, err)
		return
	}
	defer reader.Close()

	ctx.Header("Content-Type", contentType)
	ctx.Header("Content-Length", strconv.FormatInt(size, 10))
	if _, err := io.Copy(ctx.Writer, reader); err != nil {
		log.Warn().Err(err).Str("fileID", fileID).Msg("Media stream interrupted")
	}
}
