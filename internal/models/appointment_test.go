package models

import (
	"testing"
	"time"
)

func TestAppointmentDerivedFlags(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	canceled := now.Add(-time.Hour)

	tests := []struct {
		name            string
		date            time.Time
		canceledAt      *time.Time
		wantPast        bool
		wantCancellable bool
	}{
		{"far future", now.Add(72 * time.Hour), nil, false, true},
		{"one hour away", now.Add(time.Hour), nil, false, false},
		{"exactly at the cutoff", now.Add(CancellationWindow), nil, false, false},
		{"just past the cutoff", now.Add(CancellationWindow + time.Minute), nil, false, true},
		{"in the past", now.Add(-time.Hour), nil, true, false},
		{"canceled", now.Add(72 * time.Hour), &canceled, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Date: tt.date, CanceledAt: tt.canceledAt}
			if got := a.Past(now); got != tt.wantPast {
				t.Errorf("Past = %v, want %v", got, tt.wantPast)
			}
			if got := a.Cancellable(now); got != tt.wantCancellable {
				t.Errorf("Cancellable = %v, want %v", got, tt.wantCancellable)
			}
			if got := a.Active(); got != (tt.canceledAt == nil) {
				t.Errorf("Active = %v, want %v", got, tt.canceledAt == nil)
			}
		})
	}
}
