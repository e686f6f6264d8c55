package dto

// RegisterRequest starts the registration flow. The account is only created
// after the emailed verification code is confirmed.
type RegisterRequest struct {
	Login    string `json:"login" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// LoginRequest accepts either the login or the email in Username.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      uint   `json:"user_id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	IsAdmin     bool   `json:"is_admin"`
}

type UserResponse struct {
	ID      uint   `json:"id"`
	Login   string `json:"login"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetTokenValidation is returned instead of an error so the frontend can
// render a specific message per failure reason.
type ResetTokenValidation struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"` // token_not_found, token_used, token_expired, user_missing, email_mismatch
}
