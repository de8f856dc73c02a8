package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/everest-cuisine/booking-api/internal/config"
	"github.com/everest-cuisine/booking-api/internal/httperr"
	"github.com/everest-cuisine/booking-api/internal/httpresp"
	"github.com/everest-cuisine/booking-api/internal/models"
	"github.com/everest-cuisine/booking-api/internal/validators"
)

const tokenTTL = 24 * time.Hour

// AdminFinder looks up back-office accounts by email.
type AdminFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

type AdminAuthHandler struct {
	admins AdminFinder
	config *config.Config
	now    func() time.Time
}

func NewAdminAuthHandler(admins AdminFinder, cfg *config.Config) *AdminAuthHandler {
	return &AdminAuthHandler{admins: admins, config: cfg, now: time.Now}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmail(email) {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	admin, err := h.admins.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		slog.Error("admin lookup failed", slog.String("error", err.Error()))
		httperr.Internal(c, "internal_error", "Failed to sign in.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(admin)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to sign in.")
		return
	}

	httpresp.OK(c, gin.H{
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AdminAuthHandler) generateToken(admin *models.AdminUser) (string, error) {
	now := h.now()
	claims := jwt.MapClaims{
		"sub":  admin.ID,
		"role": admin.Role,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
