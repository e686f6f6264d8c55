package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/middleware"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authSvc         service.AuthService
	registrationSvc service.RegistrationService
	resetSvc        service.PasswordResetService
	userSvc         service.UserService
}

func NewAuthController(
	authSvc service.AuthService,
	registrationSvc service.RegistrationService,
	resetSvc service.PasswordResetService,
	userSvc service.UserService,
) *AuthController {
	return &AuthController{
		authSvc:         authSvc,
		registrationSvc: registrationSvc,
		resetSvc:        resetSvc,
		userSvc:         userSvc,
	}
}

func (c *AuthController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", c.Register)
		auth.POST("/verify-email", c.VerifyEmail)
		auth.POST("/login", c.Login)
		auth.POST("/forgot-password", c.ForgotPassword)
		auth.POST("/validate-reset-token", c.ValidateResetToken)
		auth.POST("/reset-password", c.ResetPassword)
		auth.GET("/me", middleware.RequireAuth(c.authSvc), c.Me)

		api.GET("/users", middleware.RequireAuth(c.authSvc), middleware.RequireAdmin(), c.ListUsers)
	}
}

// Register godoc
// @Summary Start registration
// @Description Validates the payload and emails a verification code. The account is created once the code is confirmed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Weak password or invalid email"
// @Failure 400 {object} dto.ErrorResponse "Login or email already taken"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	if err := c.registrationSvc.Register(req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Verification code sent"})
}

// VerifyEmail godoc
// @Summary Confirm the emailed verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyEmailRequest true "Email and code"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Wrong or expired code"
// @Router /api/auth/verify-email [post]
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	user, err := c.registrationSvc.VerifyEmail(req.Email, req.Code)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.issueToken(ctx, user)
}

// Login godoc
// @Summary Log in with login or email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse "Wrong credentials"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	user, err := c.authSvc.Authenticate(req.Username, req.Password)
	if err != nil {
		log.Warn().Str("username", req.Username).Msg("Failed login attempt")
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "Incorrect username or password"})
		return
	}
	c.issueToken(ctx, user)
}

func (c *AuthController) issueToken(ctx *gin.Context, user *model.User) {
	token, err := c.authSvc.CreateAccessToken(user)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		Login:       user.Login,
		Email:       user.Email,
		IsAdmin:     user.IsAdmin,
	})
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	ctx.JSON(http.StatusOK, dto.UserResponse{
		ID:      user.ID,
		Login:   user.Login,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
}

// ListUsers godoc
// @Summary (Admin) List users
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/users [get]
func (c *AuthController) ListUsers(ctx *gin.Context) {
	skip, limit := skipLimit(ctx)
	users, err := c.userSvc.List(skip, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// ForgotPassword godoc
// @Summary Request a password reset link
// @Description Always returns 200 so the endpoint does not reveal which emails are registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Router /api/auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	if err := c.resetSvc.RequestReset(req.Email); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "If the email is registered, a reset link has been sent"})
}

// ValidateResetToken godoc
// @Summary Check a reset token before showing the form
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token and email (new_password ignored)"
// @Success 200 {object} dto.ResetTokenValidation
// @Router /api/auth/validate-reset-token [post]
func (c *AuthController) ValidateResetToken(ctx *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
		Email string `json:"email" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, c.resetSvc.ValidateToken(req.Token, req.Email))
}

// ResetPassword godoc
// @Summary Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token, email and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid token or weak password"
// @Router /api/auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}
	if err := c.resetSvc.ResetPassword(req.Token, req.Email, req.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been reset"})
}
