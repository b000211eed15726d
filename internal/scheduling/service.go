package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"booking-app-server/internal/models"
)

// PageSize is the fixed page size for appointment listings.
const PageSize = 20

// Service is the scheduling engine: it validates and creates appointments,
// lists a client's upcoming ones and processes cancellations. It holds no
// mutable state of its own; all synchronization lives in the store.
type Service struct {
	store      Store
	dispatcher Dispatcher
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the time source, so tests can fix "now".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a scheduling service backed by the given store and
// job dispatcher.
func NewService(store Store, dispatcher Dispatcher, opts ...Option) *Service {
	s := &Service{
		store:      store,
		dispatcher: dispatcher,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAppointment books the hour slot containing date with the given
// provider on behalf of clientID. Checks run in a fixed order and the first
// failure wins: self-booking, provider existence, past date, slot conflict.
// On success the provider gets an in-app notification.
func (s *Service) CreateAppointment(ctx context.Context, clientID, providerID uint, date time.Time) (*models.Appointment, error) {
	if providerID == clientID {
		return nil, ErrSelfBooking
	}

	provider, err := s.store.ProviderByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("look up provider %d: %w", providerID, err)
	}
	if provider == nil {
		return nil, ErrNotProvider
	}

	slot := date.Truncate(time.Hour)
	if slot.Before(s.now()) {
		return nil, ErrPastDate
	}

	appt := &models.Appointment{
		ClientID:   clientID,
		ProviderID: providerID,
		Date:       slot,
	}
	if err := s.store.CreateAppointment(ctx, appt); err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	client, err := s.store.UserByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("look up client %d: %w", clientID, err)
	}
	if client == nil {
		return nil, fmt.Errorf("client %d not found", clientID)
	}

	notification := &models.Notification{
		UserID:  providerID,
		Content: fmt.Sprintf("Novo agendamento de %s para o dia %s", client.Name, FormatDate(slot)),
	}
	if err := s.store.CreateNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	return appt, nil
}

// ProviderSummary is the slice of provider data embedded in listings.
type ProviderSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// AppointmentView is one row of a client's appointment listing, with the
// derived flags already computed.
type AppointmentView struct {
	ID          uint            `json:"id"`
	Date        time.Time       `json:"date"`
	Past        bool            `json:"past"`
	Cancellable bool            `json:"cancellable"`
	Provider    ProviderSummary `json:"provider"`
}

// ListAppointments returns the given page (1-based) of the client's active
// appointments, oldest first. An empty page is an empty slice, not an error.
func (s *Service) ListAppointments(ctx context.Context, clientID uint, page int) ([]AppointmentView, error) {
	if page < 1 {
		page = 1
	}
	appts, err := s.store.ActiveAppointments(ctx, clientID, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	now := s.now()
	views := make([]AppointmentView, 0, len(appts))
	for i := range appts {
		a := &appts[i]
		views = append(views, AppointmentView{
			ID:          a.ID,
			Date:        a.Date,
			Past:        a.Past(now),
			Cancellable: a.Cancellable(now),
			Provider: ProviderSummary{
				ID:        a.Provider.ID,
				Name:      a.Provider.Name,
				AvatarURL: a.Provider.AvatarURL,
			},
		})
	}
	return views, nil
}

// CancelAppointment moves an appointment to its terminal canceled state.
// Only the booking client may cancel, and only up to the cancellation
// window before the appointment date. The cancellation mail job is
// fire-and-forget: a dispatch failure is logged but never rolls back the
// state transition.
func (s *Service) CancelAppointment(ctx context.Context, clientID, appointmentID uint) (*models.Appointment, error) {
	appt, err := s.store.AppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("look up appointment %d: %w", appointmentID, err)
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	if appt.ClientID != clientID {
		return nil, ErrNotOwner
	}
	if appt.CanceledAt != nil {
		return nil, ErrAlreadyCanceled
	}

	now := s.now()
	if !appt.Date.Add(-models.CancellationWindow).After(now) {
		return nil, ErrPastCutoff
	}

	appt.CanceledAt = &now
	if err := s.store.SaveAppointment(ctx, appt); err != nil {
		return nil, fmt.Errorf("save appointment %d: %w", appointmentID, err)
	}

	job := CancellationMail{
		JobID:         uuid.NewString(),
		AppointmentID: appt.ID,
		Date:          appt.Date,
		CanceledAt:    now,
		ProviderName:  appt.Provider.Name,
		ProviderEmail: appt.Provider.Email,
		ClientName:    appt.Client.Name,
	}
	if err := s.dispatcher.Enqueue(ctx, JobCancellationMail, job); err != nil {
		log.Error().Err(err).
			Uint("appointment_id", appt.ID).
			Str("job", JobCancellationMail).
			Msg("failed to enqueue cancellation mail")
	}

	return appt, nil
}
