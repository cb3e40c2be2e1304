// Package chat is the session lifecycle and request orchestration core.
//
// It owns the client-side view of a conversation with the backend: which
// session is open, which messages are shown, and how outgoing messages
// are matched to server-side sessions that may not exist yet. The
// package is independent of any view technology; the terminal UI drives
// it through named operations and renders state snapshots.
//
// Session identity is server-assigned. A conversation starts without an
// identity, the server mints one on the first successful exchange, and
// the controller adopts it from the response exactly once. Destructive
// actions pass through a one-slot confirmation gate.
package chat

import (
	"errors"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/log"
)

// DefaultMaxMessages bounds the transcript when Config leaves it unset.
const DefaultMaxMessages = 100

// ErrInvalidTemperature reports a sampling temperature outside [0, 1].
var ErrInvalidTemperature = errors.New("temperature must be between 0 and 1")

// Config contains all parameters for the controller.
type Config struct {
	Client *api.Client
	Logger log.Logger

	// Temperature is the initial sampling temperature, sent with every
	// chat request. Must be in [0, 1].
	Temperature float64

	// MaxMessages bounds the transcript; zero uses DefaultMaxMessages.
	MaxMessages int
}

// validate checks if all required parameters are present.
func (cfg Config) validate() error {
	if cfg.Client == nil {
		return errors.New("api client is required")
	}
	if cfg.Temperature < 0 || cfg.Temperature > 1 {
		return ErrInvalidTemperature
	}
	if cfg.MaxMessages < 0 {
		return errors.New("max messages must not be negative")
	}
	return nil
}

// Controller orchestrates session lifecycle and message sending. All
// operations are safe for concurrent use; state mutations go through
// the single-owner State container and destructive actions through the
// Gate.
type Controller struct {
	client *api.Client
	state  *State
	gate   *Gate
	logger log.Logger
}

// New creates a controller with an empty conversation.
func New(cfg Config) (*Controller, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	maxMessages := cfg.MaxMessages
	if maxMessages == 0 {
		maxMessages = DefaultMaxMessages
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNop()
	}

	return &Controller{
		client: cfg.Client,
		state:  NewState(maxMessages, cfg.Temperature),
		gate:   NewGate(),
		logger: logger,
	}, nil
}

// State exposes the state container for snapshot reads.
func (c *Controller) State() *State {
	return c.state
}

// Gate exposes the confirmation gate so the view layer can receive
// questions and resolve them.
func (c *Controller) Gate() *Gate {
	return c.gate
}

// SetTemperature updates the sampling temperature for future requests.
func (c *Controller) SetTemperature(v float64) error {
	if v < 0 || v > 1 {
		return ErrInvalidTemperature
	}
	c.state.SetTemperature(v)
	c.logger.Debug("temperature changed", "temperature", v)
	return nil
}
