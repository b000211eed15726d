// Package store persists the scheduling entities in MySQL through gorm.
// It implements scheduling.Store.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"booking-app-server/internal/models"
	"booking-app-server/internal/scheduling"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) ProviderByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND provider = ?", id, true).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var a models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Provider").
		First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ActiveAppointments(ctx context.Context, clientID uint, limit, offset int) ([]models.Appointment, error) {
	var out []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Provider").
		Where("client_id = ? AND canceled_at IS NULL", clientID).
		Order("date asc").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment runs in a transaction and locks any active row for the
// same (provider, date) slot before inserting, so two concurrent bookings
// for one slot cannot both pass the availability check.
func (s *Store) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Appointment
		err := tx.Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("provider_id = ? AND date = ? AND canceled_at IS NULL", appt.ProviderID, appt.Date).
			Take(&existing).Error

		if err == nil {
			return scheduling.ErrSlotUnavailable
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(appt).Error
	})
}

func (s *Store) SaveAppointment(ctx context.Context, appt *models.Appointment) error {
	return s.db.WithContext(ctx).Save(appt).Error
}

func (s *Store) CreateNotification(ctx context.Context, n *models.Notification) error {
	return s.db.WithContext(ctx).Create(n).Error
}
