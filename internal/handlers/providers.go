package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booking-app-server/internal/models"
	"booking-app-server/internal/utils"
)

// ProviderHandler exposes the provider directory.
type ProviderHandler struct {
	DB *gorm.DB
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(db *gorm.DB) *ProviderHandler {
	return &ProviderHandler{DB: db}
}

// ListProviders returns every user with the provider flag set.
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	var providers []models.User
	if err := h.DB.Where("provider = ?", true).Order("name asc").Find(&providers).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch providers")
		return
	}

	sanitized := make([]models.UserSanitized, len(providers))
	for i, p := range providers {
		sanitized[i] = p.Sanitize()
	}

	utils.Success(c, sanitized)
}
