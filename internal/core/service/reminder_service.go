package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/api/metrics"
	"github.com/afyakuu/platform-api/internal/core/ports"
	"github.com/afyakuu/platform-api/internal/infrastructure/sms"
)

// Deduper answers whether a reminder for a phone/appointment pair was
// already delivered.
type Deduper interface {
	IsDuplicate(ctx context.Context, phone, appointmentDate string) (bool, error)
	Mark(ctx context.Context, phone, appointmentDate string) error
}

// ReminderSMSService delivers appointment reminders through the SMS gateway
// with at-most-one delivery per appointment per day.
type ReminderSMSService struct {
	gateway ports.SMSGateway
	dedup   Deduper
	logger  zerolog.Logger
}

func NewReminderService(gateway ports.SMSGateway, dedup Deduper, logger zerolog.Logger) *ReminderSMSService {
	return &ReminderSMSService{gateway: gateway, dedup: dedup, logger: logger}
}

// Send normalises the phone number, skips duplicates, and delivers the
// message. A duplicate is a successful no-op, not an error.
func (s *ReminderSMSService) Send(ctx context.Context, input ports.ReminderInput) (*ports.SMSResult, error) {
	phone, err := sms.FormatKenyanPhone(input.PhoneNumber)
	if err != nil {
		metrics.RemindersTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if input.AppointmentDate != "" {
		dup, err := s.dedup.IsDuplicate(ctx, phone, input.AppointmentDate)
		if err != nil {
			s.logger.Error().Err(err).Str("patient_id", input.PatientID).Msg("reminder dedup check failed")
		} else if dup {
			metrics.RemindersTotal.WithLabelValues("duplicate").Inc()
			s.logger.Info().Str("patient_id", input.PatientID).Msg("reminder already sent, skipping")
			return &ports.SMSResult{MessageID: "duplicate"}, nil
		}
	}

	result, err := s.gateway.Send(ctx, phone, input.Message)
	if err != nil {
		metrics.RemindersTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if input.AppointmentDate != "" {
		if err := s.dedup.Mark(ctx, phone, input.AppointmentDate); err != nil {
			s.logger.Error().Err(err).Str("patient_id", input.PatientID).Msg("failed to mark reminder sent")
		}
	}

	metrics.RemindersTotal.WithLabelValues("sent").Inc()
	return result, nil
}
