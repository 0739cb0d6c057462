// Package assistant keeps the chat transcript and talks to the
// text-generation service. One request in flight at a time; any service
// failure collapses into a single fallback turn so the conversation never
// gets stuck.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

const greeting = "Hello! I am your HOLLMOVIES4U VIP Assistant. How can I help you today?"

// fallbackReply covers every failure mode of the service call: timeout,
// non-200, malformed payload. The user sees one message either way.
const fallbackReply = "I'm having trouble connecting to the network. Please try again later."

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrBusy         = errors.New("a request is already in flight")
)

type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Replier generates one model turn for the transcript so far.
type Replier interface {
	GenerateReply(ctx context.Context, history []Message, userText string) (string, error)
}

type Assistant struct {
	mu       sync.Mutex
	busy     bool
	messages []Message
	client   Replier
}

func New(client Replier) *Assistant {
	return &Assistant{
		messages: []Message{{Role: RoleModel, Text: greeting}},
		client:   client,
	}
}

// Messages returns a copy of the transcript.
func (a *Assistant) Messages() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Message, len(a.messages))
	copy(out, a.messages)
	return out
}

func (a *Assistant) Busy() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy
}

// Send appends the user turn, queries the service with the prior transcript,
// and appends exactly one model turn — the reply or the fallback. The user
// turn stays in the transcript even when the call fails. Blank input and
// send-while-busy are rejected without touching the transcript.
func (a *Assistant) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	a.mu.Lock()
	if a.busy {
		a.mu.Unlock()
		return ErrBusy
	}
	history := make([]Message, len(a.messages))
	copy(history, a.messages)
	a.messages = append(a.messages, Message{Role: RoleUser, Text: text})
	a.busy = true
	a.mu.Unlock()

	reply, err := a.client.GenerateReply(ctx, history, text)
	if err != nil {
		reply = fallbackReply
	}

	a.mu.Lock()
	// Clear unconditionally; a stuck busy flag would disable input forever.
	a.busy = false
	a.messages = append(a.messages, Message{Role: RoleModel, Text: reply})
	a.mu.Unlock()
	return nil
}
