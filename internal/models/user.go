package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents a user in the system. A service provider is a regular
// user with the Provider flag set.
type User struct {
	BaseModel
	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Provider  bool   `gorm:"default:false;index" json:"provider"`
	AvatarURL string `gorm:"size:255" json:"avatarUrl,omitempty"`

	// Relations (not always preloaded)
	ProviderAppointments []Appointment  `gorm:"foreignKey:ProviderID" json:"-"`
	ClientAppointments   []Appointment  `gorm:"foreignKey:ClientID" json:"-"`
	Notifications        []Notification `gorm:"foreignKey:UserID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Provider  bool   `json:"provider"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Provider:  u.Provider,
		AvatarURL: u.AvatarURL,
	}
}
