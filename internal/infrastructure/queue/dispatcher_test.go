package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-system/internal/core/ports"
)

type recordingProcessor struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	byUser map[string][]ports.CheckinInput
}

func newRecordingProcessor(expected int) *recordingProcessor {
	p := &recordingProcessor{byUser: make(map[string][]ports.CheckinInput)}
	p.wg.Add(expected)
	return p
}

func (p *recordingProcessor) ProcessCheckin(_ context.Context, input ports.CheckinInput) error {
	p.mu.Lock()
	p.byUser[input.UserID] = append(p.byUser[input.UserID], input)
	p.mu.Unlock()
	p.wg.Done()
	return nil
}

func (p *recordingProcessor) wait(t *testing.T) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for check-ins to be processed")
	}
}

func TestDispatcher_PreservesPerUserOrder(t *testing.T) {
	const perUser = 50
	users := []string{"sv001", "sv002", "sv003"}

	processor := newRecordingProcessor(perUser * len(users))
	d := NewDispatcher(4, processor, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	base := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	for i := 0; i < perUser; i++ {
		for _, user := range users {
			d.Enqueue(ports.CheckinInput{
				UserID:     user,
				ScheduleID: 7,
				DeviceTime: base.Add(time.Duration(i) * time.Second),
			})
		}
	}

	processor.wait(t)

	for _, user := range users {
		got := processor.byUser[user]
		if len(got) != perUser {
			t.Fatalf("user %s: expected %d check-ins, got %d", user, perUser, len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].DeviceTime.Before(got[i-1].DeviceTime) {
				t.Fatalf("user %s: check-ins processed out of order at %d", user, i)
			}
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())

	for _, user := range []string{"sv001", "lc042", "ghost"} {
		first := d.shardIndex(user)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(user); got != first {
				t.Fatalf("shard for %s changed: %d vs %d", user, first, got)
			}
		}
	}
}

type blockedProcessor struct {
	release chan struct{}
}

func (p blockedProcessor) ProcessCheckin(context.Context, ports.CheckinInput) error {
	<-p.release
	return nil
}

func TestDispatcher_DropsWhenStopped(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	d := NewDispatcher(1, blockedProcessor{release: release}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)

	select {
	case <-d.stop:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not observe cancellation")
	}

	// With the single worker gone, the shard buffer fills up; submissions
	// past capacity must be dropped rather than block the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+8; i++ {
			d.Enqueue(ports.CheckinInput{UserID: "sv001", ScheduleID: 7, DeviceTime: time.Now().UTC()})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue blocked after shutdown")
	}
}

func TestDispatcher_EnqueueBatch(t *testing.T) {
	processor := newRecordingProcessor(3)
	d := NewDispatcher(2, processor, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	now := time.Now().UTC()
	d.EnqueueBatch([]ports.CheckinInput{
		{UserID: "sv001", ScheduleID: 7, DeviceTime: now},
		{UserID: "sv001", ScheduleID: 7, DeviceTime: now.Add(time.Second)},
		{UserID: "sv002", ScheduleID: 8, DeviceTime: now},
	})

	processor.wait(t)

	if len(processor.byUser["sv001"]) != 2 || len(processor.byUser["sv002"]) != 1 {
		t.Fatalf("unexpected distribution: %+v", processor.byUser)
	}
}
