package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUsecases "hostelhub/internal/application/auth/usecases"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/utils"
)

type AuthHandler struct {
	registerUC *authUsecases.RegisterUseCase
	loginUC    *authUsecases.LoginUseCase
	refreshUC  *authUsecases.RefreshTokenUseCase
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC *authUsecases.RegisterUseCase,
	loginUC *authUsecases.LoginUseCase,
	refreshUC *authUsecases.RefreshTokenUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		refreshUC:  refreshUC,
		logger:     logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender" binding:"omitempty,oneof=male female"`
}

// @Summary		Register
// @Description	Create a user account with a resident profile
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			registration	body		RegisterRequest		true	"Registration data"
// @Success		201				{object}	utils.APIResponse	"Account created"
// @Failure		400				{object}	utils.APIResponse	"Bad request"
// @Failure		409				{object}	utils.APIResponse	"Email already registered"
// @Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), authUsecases.RegisterCommand{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Gender:   req.Gender,
	})
	if err != nil {
		h.logger.Warnw("registration failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "account created successfully")
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary		Login
// @Description	Authenticate with email and password
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			credentials	body		LoginRequest		true	"Credentials"
// @Success		200			{object}	utils.APIResponse	"Login successful"
// @Failure		401			{object}	utils.APIResponse	"Invalid credentials"
// @Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), authUsecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// @Summary		Refresh tokens
// @Description	Exchange a refresh token for a new token pair
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			token	body		RefreshRequest		true	"Refresh token"
// @Success		200		{object}	utils.APIResponse	"Tokens refreshed"
// @Failure		401		{object}	utils.APIResponse	"Invalid refresh token"
// @Router			/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	tokens, err := h.refreshUC.Execute(c.Request.Context(), authUsecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tokens refreshed", tokens)
}
