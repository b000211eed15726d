package scheduling

import (
	"context"

	"booking-app-server/internal/models"
)

// Store is the persistence contract the engine depends on. Lookups return
// (nil, nil) when the record does not exist; any other failure is a plain
// error.
type Store interface {
	// UserByID returns the user with the given id.
	UserByID(ctx context.Context, id uint) (*models.User, error)

	// ProviderByID returns the user with the given id only if its provider
	// flag is set.
	ProviderByID(ctx context.Context, id uint) (*models.User, error)

	// AppointmentByID returns the appointment with its Client and Provider
	// relations loaded.
	AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)

	// ActiveAppointments returns the client's non-canceled appointments
	// ordered by ascending date, with the Provider relation loaded.
	ActiveAppointments(ctx context.Context, clientID uint, limit, offset int) ([]models.Appointment, error)

	// CreateAppointment inserts the appointment if and only if no active
	// appointment exists for the same (provider, date) slot. The check and
	// the insert must be atomic with respect to concurrent calls for the
	// same slot; implementations return ErrSlotUnavailable when the slot
	// is taken.
	CreateAppointment(ctx context.Context, appt *models.Appointment) error

	SaveAppointment(ctx context.Context, appt *models.Appointment) error
	CreateNotification(ctx context.Context, n *models.Notification) error
}

// Dispatcher hands named jobs to an out-of-band runner. Enqueue only reports
// submission failure; execution, retry and backoff belong to the runner.
type Dispatcher interface {
	Enqueue(ctx context.Context, job string, payload any) error
}
