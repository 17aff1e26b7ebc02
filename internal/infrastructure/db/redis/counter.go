package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const patientCounterKey = "patient:counter"

// PatientCounter issues sequence numbers for human-readable patient IDs.
type PatientCounter struct {
	client *redis.Client
}

// NewPatientCounter wraps the given Redis client.
func NewPatientCounter(client *redis.Client) *PatientCounter {
	return &PatientCounter{client: client}
}

// Next atomically increments and returns the patient sequence.
func (c *PatientCounter) Next(ctx context.Context) (int64, error) {
	n, err := c.client.Incr(ctx, patientCounterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("patient counter: %w", err)
	}
	return n, nil
}
