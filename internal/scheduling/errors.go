package scheduling

// ValidationError means the request was malformed or broke a booking rule
// the caller can fix.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// ForbiddenError means the caller lacks permission for the operation.
type ForbiddenError struct {
	msg string
}

func (e *ForbiddenError) Error() string { return e.msg }

// NotFoundError means the referenced appointment does not exist.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

var (
	ErrPastDate        = &ValidationError{"date in the past"}
	ErrSlotUnavailable = &ValidationError{"slot unavailable"}

	ErrSelfBooking     = &ForbiddenError{"cannot book self"}
	ErrNotProvider     = &ForbiddenError{"not a provider"}
	ErrNotOwner        = &ForbiddenError{"not the owner"}
	ErrPastCutoff      = &ForbiddenError{"past cancellation cutoff"}
	ErrAlreadyCanceled = &ForbiddenError{"appointment already canceled"}

	ErrAppointmentNotFound = &NotFoundError{"appointment not found"}
)
