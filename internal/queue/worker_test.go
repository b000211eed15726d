package queue

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"booking-app-server/internal/scheduling"
)

type fakeMailer struct {
	to      string
	subject string
	body    string
	err     error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.to = to
	f.subject = subject
	f.body = body
	return nil
}

func TestWorkerHandleCancellationMail(t *testing.T) {
	m := &fakeMailer{}
	w := &Worker{mailer: m}

	job := scheduling.CancellationMail{
		JobID:         "7e0c9a50-5d5c-4c67-9f37-6f0a4a7b9b11",
		AppointmentID: 42,
		Date:          time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
		CanceledAt:    time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC),
		ProviderName:  "Cecilia",
		ProviderEmail: "cecilia@provider.com",
		ClientName:    "Carlos",
	}
	body, err := json.Marshal(job)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := w.handle(context.Background(), scheduling.JobCancellationMail, body); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if m.to != "cecilia@provider.com" {
		t.Errorf("mail to = %q", m.to)
	}
	if m.subject != "Agendamento cancelado" {
		t.Errorf("mail subject = %q", m.subject)
	}
	for _, want := range []string{"Olá, Cecilia", "Carlos", "01 de junho, às 10h00"} {
		if !strings.Contains(m.body, want) {
			t.Errorf("mail body %q missing %q", m.body, want)
		}
	}
}

func TestWorkerHandleBadPayload(t *testing.T) {
	w := &Worker{mailer: &fakeMailer{}}
	if err := w.handle(context.Background(), scheduling.JobCancellationMail, []byte("{")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestWorkerHandleUnknownJob(t *testing.T) {
	m := &fakeMailer{}
	w := &Worker{mailer: m}
	if err := w.handle(context.Background(), "some.other.job", []byte("{}")); err != nil {
		t.Fatalf("unknown jobs must be skipped, got %v", err)
	}
	if m.to != "" {
		t.Error("unknown job must not send mail")
	}
}
