package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReplier struct {
	reply   string
	err     error
	gate    chan struct{} // when set, GenerateReply blocks until closed
	history []Message
	prompt  string
}

func (f *fakeReplier) GenerateReply(ctx context.Context, history []Message, userText string) (string, error) {
	f.history = append([]Message(nil), history...)
	f.prompt = userText
	if f.gate != nil {
		<-f.gate
	}
	return f.reply, f.err
}

func TestTranscriptStartsWithGreeting(t *testing.T) {
	a := New(&fakeReplier{})
	msgs := a.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleModel, msgs[0].Role)
	assert.Equal(t, greeting, msgs[0].Text)
}

func TestSendAppendsUserAndModelTurn(t *testing.T) {
	fake := &fakeReplier{reply: "Dangal Returns is rated 9.1."}
	a := New(fake)

	require.NoError(t, a.Send(context.Background(), "What should I watch?"))

	msgs := a.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, Message{Role: RoleUser, Text: "What should I watch?"}, msgs[1])
	assert.Equal(t, Message{Role: RoleModel, Text: "Dangal Returns is rated 9.1."}, msgs[2])

	// The service saw the prior transcript, not the new turn.
	require.Len(t, fake.history, 1)
	assert.Equal(t, greeting, fake.history[0].Text)
	assert.Equal(t, "What should I watch?", fake.prompt)
	assert.False(t, a.Busy())
}

func TestSendRejectsBlankInput(t *testing.T) {
	a := New(&fakeReplier{})

	assert.ErrorIs(t, a.Send(context.Background(), ""), ErrEmptyMessage)
	assert.ErrorIs(t, a.Send(context.Background(), "   \t"), ErrEmptyMessage)
	assert.Len(t, a.Messages(), 1)
}

func TestSendFallsBackOnFailure(t *testing.T) {
	a := New(&fakeReplier{err: errors.New("boom")})

	require.NoError(t, a.Send(context.Background(), "hello"))

	msgs := a.Messages()
	require.Len(t, msgs, 3)
	// The user turn stays even though the call failed.
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, fallbackReply, msgs[2].Text)
	// Busy must clear on the failure path too.
	assert.False(t, a.Busy())
}

func TestSendWhileInFlightIsRejected(t *testing.T) {
	fake := &fakeReplier{reply: "ok", gate: make(chan struct{})}
	a := New(fake)

	done := make(chan error, 1)
	go func() { done <- a.Send(context.Background(), "first") }()

	require.Eventually(t, a.Busy, time.Second, time.Millisecond)

	err := a.Send(context.Background(), "second")
	assert.ErrorIs(t, err, ErrBusy)
	// The rejected send left no trace in the transcript.
	assert.Len(t, a.Messages(), 2)

	close(fake.gate)
	require.NoError(t, <-done)
	assert.Len(t, a.Messages(), 3)
	assert.False(t, a.Busy())
}

func TestConsecutiveSends(t *testing.T) {
	a := New(&fakeReplier{reply: "sure"})

	require.NoError(t, a.Send(context.Background(), "one"))
	require.NoError(t, a.Send(context.Background(), "two"))

	// Two settled sends: greeting + 2 * (user + model).
	assert.Len(t, a.Messages(), 5)
}
