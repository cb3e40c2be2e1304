package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestGate_ResolvesExactlyOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	gate := NewGate()

	type outcome struct {
		accepted bool
		err      error
	}
	results := make(chan outcome, 1)
	go func() {
		accepted, err := gate.Request(context.Background(), "Titel", "Frage")
		results <- outcome{accepted, err}
	}()

	var req *ConfirmationRequest
	select {
	case req = <-gate.Requests():
	case <-time.After(time.Second):
		t.Fatal("no request arrived")
	}

	req.Resolve(true)
	// The losing second resolution must be a no-op, not a second answer.
	req.Resolve(false)

	select {
	case got := <-results:
		if got.err != nil {
			t.Fatalf("Request() error: %v", got.err)
		}
		if !got.accepted {
			t.Error("Request() = false, want the first resolution (true)")
		}
	case <-time.After(time.Second):
		t.Fatal("Request() never returned")
	}
}

func TestGate_DismissalIsNegative(t *testing.T) {
	defer goleak.VerifyNone(t)

	gate := NewGate()

	results := make(chan bool, 1)
	go func() {
		accepted, err := gate.Request(context.Background(), "Titel", "Frage")
		if err != nil {
			t.Errorf("Request() error: %v", err)
		}
		results <- accepted
	}()

	req := <-gate.Requests()
	req.Resolve(false)

	select {
	case accepted := <-results:
		if accepted {
			t.Error("Request() = true after dismissal, want false")
		}
	case <-time.After(time.Second):
		t.Fatal("Request() never returned")
	}
}

func TestGate_RejectsConcurrentRequest(t *testing.T) {
	defer goleak.VerifyNone(t)

	gate := NewGate()

	firstDone := make(chan bool, 1)
	go func() {
		accepted, err := gate.Request(context.Background(), "Erste", "Frage")
		if err != nil {
			t.Errorf("first Request() error: %v", err)
		}
		firstDone <- accepted
	}()

	var req *ConfirmationRequest
	select {
	case req = <-gate.Requests():
	case <-time.After(time.Second):
		t.Fatal("no request arrived")
	}

	// While the first question is on screen, a second one is refused
	// immediately instead of replacing it.
	_, err := gate.Request(context.Background(), "Zweite", "Frage")
	if !errors.Is(err, ErrConfirmationPending) {
		t.Fatalf("second Request() error = %v, want ErrConfirmationPending", err)
	}

	req.Resolve(true)
	select {
	case accepted := <-firstDone:
		if !accepted {
			t.Error("first Request() = false, want true: the refusal must not touch it")
		}
	case <-time.After(time.Second):
		t.Fatal("first Request() never returned")
	}
}

func TestGate_ContextCancellationFreesSlot(t *testing.T) {
	defer goleak.VerifyNone(t)

	gate := NewGate()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gate.Request(ctx, "Titel", "Frage")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Request() error = %v, want context.Canceled", err)
	}

	// The slot and the request channel must be free for the next
	// question, even though the view never saw the canceled one.
	done := make(chan bool, 1)
	go func() {
		accepted, err := gate.Request(context.Background(), "Titel", "Frage")
		if err != nil {
			t.Errorf("Request() after cancellation error: %v", err)
		}
		done <- accepted
	}()

	select {
	case req := <-gate.Requests():
		if req.Title != "Titel" {
			t.Errorf("Title = %q, want the new request", req.Title)
		}
		req.Resolve(true)
	case <-time.After(time.Second):
		t.Fatal("no request arrived after slot was freed")
	}

	select {
	case accepted := <-done:
		if !accepted {
			t.Error("Request() = false, want true")
		}
	case <-time.After(time.Second):
		t.Fatal("Request() never returned")
	}
}

func TestGate_PendingReflectsSlot(t *testing.T) {
	defer goleak.VerifyNone(t)

	gate := NewGate()
	if gate.Pending() {
		t.Error("Pending() = true on an empty gate")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := gate.Request(context.Background(), "Titel", "Frage"); err != nil {
			t.Errorf("Request() error: %v", err)
		}
	}()

	req := <-gate.Requests()
	if !gate.Pending() {
		t.Error("Pending() = false while a question waits")
	}

	req.Resolve(false)
	<-done
	if gate.Pending() {
		t.Error("Pending() = true after resolution")
	}
}
