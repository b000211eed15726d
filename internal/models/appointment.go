package models

import (
	"time"
)

// CancellationWindow is how long before the appointment date a client may
// still cancel it.
const CancellationWindow = 2 * time.Hour

// Appointment represents a booked time slot between a client and a provider.
// The slot granularity is one hour; Date always holds the start of its hour.
type Appointment struct {
	BaseModel
	ClientID   uint       `gorm:"index;not null" json:"clientId"`
	ProviderID uint       `gorm:"index:idx_provider_slot;not null" json:"providerId"`
	Date       time.Time  `gorm:"index:idx_provider_slot;not null" json:"date"`
	CanceledAt *time.Time `json:"canceledAt"`

	// Relations
	Client   User `gorm:"foreignKey:ClientID" json:"-"`
	Provider User `gorm:"foreignKey:ProviderID" json:"-"`
}

// Active reports whether the appointment has not been canceled.
func (a *Appointment) Active() bool {
	return a.CanceledAt == nil
}

// Past reports whether the appointment date is behind the given instant.
func (a *Appointment) Past(now time.Time) bool {
	return a.Date.Before(now)
}

// Cancellable reports whether the appointment can still be canceled at the
// given instant: it must be active and the cutoff must not have passed.
func (a *Appointment) Cancellable(now time.Time) bool {
	return a.Active() && a.Date.Add(-CancellationWindow).After(now)
}
