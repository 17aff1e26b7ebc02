package ports

import "context"

// SMSResult reports the outcome of a gateway send.
type SMSResult struct {
	MessageID string `json:"message_id"`
	Cost      string `json:"cost,omitempty"`
}

// SMSGateway sends a single message to an already-normalised +254 number.
type SMSGateway interface {
	Send(ctx context.Context, phone, message string) (*SMSResult, error)
}

// ReminderInput is one appointment reminder to deliver.
type ReminderInput struct {
	PhoneNumber     string
	PatientID       string
	AppointmentDate string
	Message         string
}

// ReminderService delivers appointment reminders with per-appointment
// deduplication.
type ReminderService interface {
	Send(ctx context.Context, input ReminderInput) (*SMSResult, error)
}
