package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/ports"
)

type recordingReminderService struct {
	mu      sync.Mutex
	byPhone map[string][]string
	total   int
	done    chan struct{}
	want    int
}

func newRecordingReminderService(want int) *recordingReminderService {
	return &recordingReminderService{
		byPhone: make(map[string][]string),
		done:    make(chan struct{}),
		want:    want,
	}
}

func (s *recordingReminderService) Send(_ context.Context, input ports.ReminderInput) (*ports.SMSResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPhone[input.PhoneNumber] = append(s.byPhone[input.PhoneNumber], input.Message)
	s.total++
	if s.total == s.want {
		close(s.done)
	}
	return &ports.SMSResult{MessageID: "ok"}, nil
}

func TestDispatcher_PerRecipientOrdering(t *testing.T) {
	const perPhone = 20
	phones := []string{"+254712000001", "+254712000002", "+254712000003"}

	svc := newRecordingReminderService(perPhone * len(phones))
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < perPhone; i++ {
		for _, phone := range phones {
			d.Enqueue(ports.ReminderInput{
				PhoneNumber: phone,
				Message:     fmt.Sprintf("msg-%d", i),
			})
		}
	}

	select {
	case <-svc.done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for deliveries, got %d", svc.total)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, phone := range phones {
		msgs := svc.byPhone[phone]
		if len(msgs) != perPhone {
			t.Fatalf("phone %s: got %d messages, want %d", phone, len(msgs), perPhone)
		}
		for i, msg := range msgs {
			if want := fmt.Sprintf("msg-%d", i); msg != want {
				t.Fatalf("phone %s: message %d out of order: got %s, want %s", phone, i, msg, want)
			}
		}
	}
}

func TestDispatcher_ShardingIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newRecordingReminderService(0), zerolog.Nop())

	for _, phone := range []string{"+254712345678", "+254101234567"} {
		first := d.shardIndex(phone)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(phone); got != first {
				t.Fatalf("shard for %s changed: %d then %d", phone, first, got)
			}
		}
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	svc := newRecordingReminderService(1)
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Enqueue(ports.ReminderInput{PhoneNumber: "+254712345678", Message: "before"})
	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("first delivery never happened")
	}

	cancel()
	// workers should drain nothing further once cancelled; enqueue must not block
	d.Enqueue(ports.ReminderInput{PhoneNumber: "+254712345678", Message: "after"})
}
