package dto

// ErrorResponse is the wire shape for every error: {"detail": "..."}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse reports a successful operation with no resource body.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
