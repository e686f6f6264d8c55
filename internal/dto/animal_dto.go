package dto

// AnimalCreateRequest carries a full animal payload. Media references are
// opaque object-store ids produced by the media upload endpoint.
type AnimalCreateRequest struct {
	Name         string  `json:"name" binding:"required"`
	AnimalTypeID *uint   `json:"animal_type_id"`
	HabitatID    *uint   `json:"habitat_id"`
	Description  string  `json:"description" binding:"required"`
	PreviewID    *string `json:"preview_id"`
	VideoID      *string `json:"video_id"`
	TestID       *uint   `json:"test_id"`
}

// AnimalUpdateRequest applies only the fields that are present, so an absent
// JSON field never overwrites a column with its zero value.
type AnimalUpdateRequest struct {
	Name         *string `json:"name"`
	AnimalTypeID *uint   `json:"animal_type_id"`
	HabitatID    *uint   `json:"habitat_id"`
	Description  *string `json:"description"`
	PreviewID    *string `json:"preview_id"`
	VideoID      *string `json:"video_id"`
	TestID       *uint   `json:"test_id"`
}

type AnimalResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	AnimalTypeID *uint   `json:"animal_type_id"`
	HabitatID    *uint   `json:"habitat_id"`
	Description  string  `json:"description"`
	PreviewID    *string `json:"preview_id,omitempty"`
	VideoID      *string `json:"video_id,omitempty"`
	TestID       *uint   `json:"test_id,omitempty"`
}

type AnimalDetailResponse struct {
	AnimalResponse
	AnimalType *LookupResponse       `json:"animal_type,omitempty"`
	Habitat    *LookupResponse       `json:"habitat,omitempty"`
	Photos     []AnimalPhotoResponse `json:"photos,omitempty"`
}

// AnimalFilter is bound from query parameters of GET /api/animals.
type AnimalFilter struct {
	Search        string `form:"search"`
	AnimalTypeID  uint   `form:"animal_type_id"`
	HabitatID     uint   `form:"habitat_id"`
	FavoritesOnly bool   `form:"favorites_only"`
	SortBy        string `form:"sort_by,default=id" binding:"omitempty,oneof=name id"`
	SortOrder     string `form:"sort_order,default=asc" binding:"omitempty,oneof=asc desc"`
	Skip          int    `form:"skip"`
	Limit         int    `form:"limit,default=10000"`
}

type AnimalPhotoCreateRequest struct {
	PhotoID string `json:"photo_id" binding:"required"`
}

type AnimalPhotoResponse struct {
	ID       uint   `json:"id"`
	AnimalID uint   `json:"animal_id"`
	PhotoID  string `json:"photo_id"`
}

type FavoriteCreateRequest struct {
	AnimalID uint `json:"animal_id" binding:"required"`
}

type FavoriteResponse struct {
	ID       uint `json:"id"`
	UserID   uint `json:"user_id"`
	AnimalID uint `json:"animal_id"`
}

// DeleteAnimalResponse reports the row deletion together with the advisory
// object-store cleanup outcome.
type DeleteAnimalResponse struct {
	Message     string   `json:"message"`
	RemovedKeys []string `json:"removed_object_keys"`
	FailedKeys  []string `json:"failed_object_keys"`
}
