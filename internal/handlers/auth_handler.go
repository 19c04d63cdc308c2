package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/gym-checkin/internal/config"
	"github.com/BruksfildServices01/gym-checkin/internal/httperr"
	"github.com/BruksfildServices01/gym-checkin/internal/middleware"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	ucUser "github.com/BruksfildServices01/gym-checkin/internal/usecase/user"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	register     *ucUser.RegisterUser
	authenticate *ucUser.Authenticate
	profile      *ucUser.GetUserProfile
	config       *config.Config
}

func NewAuthHandler(
	register *ucUser.RegisterUser,
	authenticate *ucUser.Authenticate,
	profile *ucUser.GetUserProfile,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		authenticate: authenticate,
		profile:      profile,
		config:       cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.register.Execute(c.Request.Context(), ucUser.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": userJSON(out.User)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.authenticate.Execute(c.Request.Context(), ucUser.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	token, err := h.generateToken(out.User)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userJSON(out.User),
		"token": token,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	out, err := h.profile.Execute(c.Request.Context(), ucUser.GetUserProfileInput{
		UserID: middleware.UserID(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(out.User)})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": now.Add(tokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}
}
