package dto

// LookupCreateRequest covers animal types, habitats and question types.
type LookupCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type LookupResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
