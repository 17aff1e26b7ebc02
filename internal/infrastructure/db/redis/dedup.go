package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// ReminderDedup provides idempotency checks for appointment reminders.
// Key format: reminder:<phone>:<appointment_date>
type ReminderDedup struct {
	client *redis.Client
}

// NewReminderDedup creates a ReminderDedup wrapping the given Redis client.
func NewReminderDedup(client *redis.Client) *ReminderDedup {
	return &ReminderDedup{client: client}
}

// IsDuplicate reports whether a reminder for this phone and appointment date
// has already been sent.
func (d *ReminderDedup) IsDuplicate(ctx context.Context, phone, appointmentDate string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(phone, appointmentDate)).Result()
	if err != nil {
		return false, fmt.Errorf("reminder dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this reminder has been sent (expires after dedupTTL).
func (d *ReminderDedup) Mark(ctx context.Context, phone, appointmentDate string) error {
	return d.client.Set(ctx, d.key(phone, appointmentDate), "1", dedupTTL).Err()
}

func (d *ReminderDedup) key(phone, appointmentDate string) string {
	return fmt.Sprintf("reminder:%s:%s", phone, appointmentDate)
}
