package chat

import (
	"context"
	"errors"
	"sync"
)

// ErrConfirmationPending reports a confirmation requested while another
// one is still waiting for the user. The second caller is refused
// outright; questions are never queued and never replace each other.
var ErrConfirmationPending = errors.New("confirmation already pending")

// ConfirmationRequest is one yes/no question for the user. The view
// layer receives it from Gate.Requests, renders a modal and answers
// through Resolve.
type ConfirmationRequest struct {
	Title   string
	Message string

	once     sync.Once
	decision chan bool
}

// Resolve delivers the user's decision. The first resolution wins;
// later calls are no-ops, so a modal firing twice or a dismissal racing
// an explicit answer cannot unblock the caller a second time.
func (r *ConfirmationRequest) Resolve(accepted bool) {
	r.once.Do(func() {
		r.decision <- accepted
	})
}

// Gate suspends callers of destructive actions until the user confirms.
// It is a one-slot mailbox: at most one question is outstanding, and a
// second request while the slot is occupied returns
// ErrConfirmationPending instead of replacing the first.
type Gate struct {
	mu      sync.Mutex
	pending *ConfirmationRequest

	requests chan *ConfirmationRequest
}

// NewGate creates an empty gate.
func NewGate() *Gate {
	return &Gate{
		// Capacity one: the slot guarantees a second request never
		// enqueues before the first left the channel.
		requests: make(chan *ConfirmationRequest, 1),
	}
}

// Requests delivers pending questions to the view layer.
func (g *Gate) Requests() <-chan *ConfirmationRequest {
	return g.requests
}

// Pending reports whether a question is waiting for the user.
func (g *Gate) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending != nil
}

// Request asks the user a yes/no question and suspends the caller until
// the answer arrives or ctx is canceled. Each request resolves exactly
// once. Cancellation counts as a negative answer and frees the slot.
func (g *Gate) Request(ctx context.Context, title, message string) (bool, error) {
	req := &ConfirmationRequest{
		Title:    title,
		Message:  message,
		decision: make(chan bool, 1),
	}

	g.mu.Lock()
	if g.pending != nil {
		g.mu.Unlock()
		return false, ErrConfirmationPending
	}
	g.pending = req
	g.mu.Unlock()

	g.requests <- req

	defer func() {
		g.mu.Lock()
		g.pending = nil
		g.mu.Unlock()
	}()

	select {
	case accepted := <-req.decision:
		return accepted, nil
	case <-ctx.Done():
		// Poison the request so a late answer from the view is a
		// no-op, and pull it back if the view never picked it up.
		req.Resolve(false)
		select {
		case <-g.requests:
		default:
		}
		return false, ctx.Err()
	}
}
