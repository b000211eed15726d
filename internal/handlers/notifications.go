package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booking-app-server/internal/middleware"
	"booking-app-server/internal/models"
	"booking-app-server/internal/utils"
)

// NotificationHandler serves a provider's in-app notifications.
type NotificationHandler struct {
	DB *gorm.DB
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{DB: db}
}

// providerFromContext loads the caller and checks the provider flag. Only
// providers have a notification inbox.
func (h *NotificationHandler) providerFromContext(c *gin.Context) (*models.User, bool) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return nil, false
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.InternalServerError(c, "Database error")
		return nil, false
	}
	if !user.Provider {
		utils.Forbidden(c, "Only providers can read notifications")
		return nil, false
	}
	return &user, true
}

// ListNotifications returns the provider's most recent notifications.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	user, ok := h.providerFromContext(c)
	if !ok {
		return
	}

	var notifications []models.Notification
	if err := h.DB.
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Limit(20).
		Find(&notifications).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch notifications")
		return
	}

	utils.Success(c, notifications)
}

// MarkNotificationRead flips the read flag on one of the provider's
// notifications.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	user, ok := h.providerFromContext(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid notification ID")
		return
	}

	var notification models.Notification
	if err := h.DB.First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Notification not found")
		} else {
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	if notification.UserID != user.ID {
		utils.Forbidden(c, "You are not the recipient of this notification")
		return
	}

	if !notification.Read {
		notification.Read = true
		if err := h.DB.Save(&notification).Error; err != nil {
			utils.InternalServerError(c, "Failed to update notification")
			return
		}
	}

	utils.Success(c, notification)
}
