package scheduling

import "time"

// JobCancellationMail is the routing key under which cancellation mail jobs
// are enqueued.
const JobCancellationMail = "appointment.cancellation-mail"

// CancellationMail is the payload handed to the dispatcher when an
// appointment is canceled. It is a snapshot, not a live reference: the job
// runs after the request that produced it has finished.
type CancellationMail struct {
	JobID         string    `json:"job_id"`
	AppointmentID uint      `json:"appointment_id"`
	Date          time.Time `json:"date"`
	CanceledAt    time.Time `json:"canceled_at"`
	ProviderName  string    `json:"provider_name"`
	ProviderEmail string    `json:"provider_email"`
	ClientName    string    `json:"client_name"`
}
