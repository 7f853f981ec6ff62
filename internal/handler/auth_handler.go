package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/secureride/booking-service/internal/dto"
	"github.com/secureride/booking-service/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService service.AuthService
	cookies     CookieOptions
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// registerResponse is the 201 body for a successful registration. The
// verification token is included because this service has no mail delivery;
// the caller is responsible for getting it to the user.
type registerResponse struct {
	User              *dto.UserResponse `json:"user"`
	VerificationToken string            `json:"verification_token"`
}

// Register handles user registration. The account starts in pending status
// and must verify its email before logging in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, verificationToken, err := h.authService.Register(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, registerResponse{
		User:              user,
		VerificationToken: verificationToken,
	})
}

// VerifyEmail consumes a one-time verification token and activates the account
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.authService.VerifyEmail(c.Request.Context(), req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ResendVerification issues a fresh verification token for a pending account
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	token, err := h.authService.ResendVerification(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, registerResponse{VerificationToken: token})
}

// Login authenticates a user and sets the auth cookies
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookies(c, h.cookies,
		response.AuthResponse.AccessToken, response.AuthResponse.ExpiresIn,
		response.RefreshToken, response.ExpiresIn,
	)

	c.JSON(http.StatusOK, response.AuthResponse)
}

// Refresh rotates the refresh token into a new pair. A token of the wrong
// type, or any other failure, yields 401 and no new pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "refresh token not found",
		})
		return
	}

	response, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookies(c, h.cookies,
		response.AuthResponse.AccessToken, response.AuthResponse.ExpiresIn,
		response.RefreshToken, response.ExpiresIn,
	)

	c.JSON(http.StatusOK, response.AuthResponse)
}

// Logout invalidates the refresh token and clears the auth cookies
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")

	refreshToken, _ := c.Cookie(RefreshTokenCookie)

	if err := h.authService.Logout(c.Request.Context(), userID, refreshToken); err != nil {
		respondError(c, err)
		return
	}

	clearAuthCookies(c, h.cookies)

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Logged out successfully",
	})
}

// GetMe returns the current user's profile
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
