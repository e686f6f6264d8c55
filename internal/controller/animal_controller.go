package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/middleware"
	"github.com/lshigami/Zooracle/internal/service"
)

type AnimalController struct {
	authSvc     service.AuthService
	animalSvc   service.AnimalService
	deletionSvc service.DeletionService
}

func NewAnimalController(authSvc service.AuthService, animalSvc service.AnimalService, deletionSvc service.DeletionService) *AnimalController {
	return &AnimalController{authSvc: authSvc, animalSvc: animalSvc, deletionSvc: deletionSvc}
}

func (c *AnimalController) RegisterRoutes(router *gin.Engine) {
	requireAuth := middleware.RequireAuth(c.authSvc)
	requireAdmin := middleware.RequireAdmin()

	api := router.Group("/api")
	{
		animals := api.Group("/animals")
		animals.POST("", requireAuth, requireAdmin, c.Create)
		animals.GET("", middleware.OptionalAuth(c.authSvc), c.List)
		animals.GET("/:id", c.Get)
		animals.PUT("/:id", requireAuth, requireAdmin, c.Update)
		animals.DELETE("/:id", requireAuth, requireAdmin, c.Delete)
		animals.POST("/:id/photos", requireAuth, requireAdmin, c.AddPhoto)
		animals.GET("/:id/photos", c.ListPhotos)
		animals.DELETE("/:id/photos/:photo_id", requireAuth, requireAdmin, c.DeletePhoto)

		favorites := animals.Group("/favorites", requireAuth)
		favorites.POST("", c.AddFavorite)
		favorites.GET("", c.ListFavorites)
		favorites.DELETE("/:animal_id", c.RemoveFavorite)
		animals.GET("/check-favorite/:animal_id", requireAuth, c.CheckFavorite)
	}
}

// Create godoc
// @Summary (Admin) Create an animal
// @Tags animals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param animal body dto.AnimalCreateRequest true "Animal data"
// @Success 201 {object} dto.AnimalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Referenced type, habitat or test missing"
// @Router /api/animals [post]
func (c *AnimalController) Create(ctx *gin.Context) {
	var req dto.AnimalCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	animal, err := c.animalSvc.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, animal)
}

// List godoc
// @Summary List animals
// @Description Filters by name substring, type, habitat and (for authenticated callers) favorites.
// @Tags animals
// @Produce json
// @Param search query string false "Case-insensitive name substring"
// @Param animal_type_id query int false "Animal type filter"
// @Param habitat_id query int false "Habitat filter"
// @Param favorites_only query bool false "Only the caller's favorites"
// @Param sort_by query string false "id or name"
// @Param sort_order query string false "asc or desc"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} dto.AnimalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/animals [get]
func (c *AnimalController) List(ctx *gin.Context) {
	var filter dto.AnimalFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	var userID *uint
	if user := middleware.CurrentUser(ctx); user != nil {
		userID = &user.ID
	}
	animals, err := c.animalSvc.List(filter, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, animals)
}

// Get godoc
// @Summary Get an animal with type, habitat and photos
// @Tags animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} dto.AnimalDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/animals/{id} [get]
func (c *AnimalController) Get(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	animal, err := c.animalSvc.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, animal)
}

// Update godoc
// @Summary (Admin) Update an animal
// @Description Only the fields present in the body are applied.
// @Tags animals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Animal ID"
// @Param animal body dto.AnimalUpdateRequest true "Fields to change"
// @Success 200 {object} dto.AnimalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/animals/{id} [put]
func (c *AnimalController) Update(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AnimalUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	animal, err := c.animalSvc.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, animal)
}

// Delete godoc
// @Summary (Admin) Delete an animal and everything attached to it
// @Description Removes the quiz, scores, photos and favorites in one transaction, then cleans the object store best effort.
// @Tags animals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Animal ID"
// @Success 200 {object} dto.DeleteAnimalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/animals/{id} [delete]
func (c *AnimalController) Delete(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	result, err := c.deletionSvc.DeleteAnimal(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AddPhoto godoc
// @Summary (Admin) Attach an uploaded photo to an animal
// @Tags animals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Animal ID"
// @Param photo body dto.AnimalPhotoCreateRequest true "Uploaded file id"
// @Success 201 {object} dto.AnimalPhotoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/animals/{id}/photos [post]
func (c *AnimalController) AddPhoto(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AnimalPhotoCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	photo, err := c.animalSvc.AddPhoto(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, photo)
}

// ListPhotos godoc
// @Summary List an animal's gallery photos
// @Tags animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {array} dto.AnimalPhotoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/animals/{id}/photos [get]
func (c *AnimalController) ListPhotos(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	photos, err := c.animalSvc.ListPhotos(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, photos)
}

// DeletePhoto godoc
// @Summary (Admin) Detach a photo and remove its files
// @Tags animals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Animal ID"
// @Param photo_id path string true "Photo file id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/animals/{id}/photos/{photo_id} [delete]
func (c *AnimalController) DeletePhoto(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	photoID := ctx.Param("photo_id")
	if _, _, err := c.deletionSvc.DeletePhoto(ctx.Request.Context(), id, photoID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Photo deleted"})
}

// AddFavorite godoc
// @Summary Add an animal to the caller's favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param favorite body dto.FavoriteCreateRequest true "Animal id"
// @Success 201 {object} dto.FavoriteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/animals/favorites [post]
func (c *AnimalController) AddFavorite(ctx *gin.Context) {
	var req dto.FavoriteCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	user := middleware.CurrentUser(ctx)
	favorite, err := c.animalSvc.AddFavorite(user.ID, req.AnimalID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, favorite)
}

// ListFavorites godoc
// @Summary List the caller's favorite animals
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AnimalResponse
// @Router /api/animals/favorites [get]
func (c *AnimalController) ListFavorites(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	animals, err := c.animalSvc.ListFavorites(user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, animals)
}

// RemoveFavorite godoc
// @Summary Remove an animal from the caller's favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param animal_id path int true "Animal ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/animals/favorites/{animal_id} [delete]
func (c *AnimalController) RemoveFavorite(ctx *gin.Context) {
	animalID, ok := uintParam(ctx, "animal_id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)
	if err := c.animalSvc.RemoveFavorite(user.ID, animalID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Favorite removed"})
}

// CheckFavorite godoc
// @Summary Tell whether an animal is in the caller's favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param animal_id path int true "Animal ID"
// @Success 200 {boolean} bool
// @Router /api/animals/check-favorite/{animal_id} [get]
func (c *AnimalController) CheckFavorite(ctx *gin.Context) {
	animalID, ok := uintParam(ctx, "animal_id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)
	isFavorite, err := c.animalSvc.IsFavorite(user.ID, animalID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, isFavorite)
}
