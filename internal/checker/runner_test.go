package checker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain collects all events until the channel closes, returning the
// output lines and the final Done event.
func drain(t *testing.T, r *Run) ([]Event, Event) {
	t.Helper()
	var lines []Event
	for ev := range r.Events {
		if ev.Done {
			return lines, ev
		}
		lines = append(lines, ev)
	}
	t.Fatal("events channel closed without a Done event")
	return nil, Event{}
}

func TestStartStreamsBothPipes(t *testing.T) {
	r, err := Start(context.Background(), t.TempDir(),
		[]string{"sh", "-c", "echo out; echo err >&2"})
	require.NoError(t, err)

	lines, done := drain(t, r)
	assert.NoError(t, done.Err)

	var out, errLines []string
	for _, ev := range lines {
		if ev.Stderr {
			errLines = append(errLines, ev.Line)
		} else {
			out = append(out, ev.Line)
		}
	}
	assert.Equal(t, []string{"out"}, out)
	assert.Equal(t, []string{"err"}, errLines)
}

func TestStartStopsAtFirstFailingStep(t *testing.T) {
	r, err := Start(context.Background(), t.TempDir(),
		[]string{"sh", "-c", "echo one; exit 3"},
		[]string{"sh", "-c", "echo two"})
	require.NoError(t, err)

	lines, done := drain(t, r)
	require.Error(t, done.Err)
	for _, ev := range lines {
		assert.NotEqual(t, "two", ev.Line, "second step must not run")
	}
}

func TestStartRunsStepsInOrder(t *testing.T) {
	r, err := Start(context.Background(), t.TempDir(),
		[]string{"sh", "-c", "echo one"},
		[]string{"sh", "-c", "echo two"})
	require.NoError(t, err)

	lines, done := drain(t, r)
	require.NoError(t, done.Err)
	require.Len(t, lines, 2)
	assert.Equal(t, "one", lines[0].Line)
	assert.Equal(t, "two", lines[1].Line)
}

func TestStartUnknownCommand(t *testing.T) {
	_, err := Start(context.Background(), t.TempDir(),
		[]string{"definitely-not-a-command-xyz"})
	require.Error(t, err)
}

func TestCancelEndsRun(t *testing.T) {
	r, err := Start(context.Background(), t.TempDir(),
		[]string{"sh", "-c", "echo started; exec sleep 30"})
	require.NoError(t, err)

	// Wait for the first line so the process is definitely up.
	ev := <-r.Events
	assert.Equal(t, "started", ev.Line)
	r.Cancel()

	deadline := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-r.Events:
			if !ok {
				t.Fatal("events closed without Done event")
			}
			if ev.Done {
				assert.Error(t, ev.Err, "cancelled run reports an error")
				return
			}
		case <-deadline:
			t.Fatal("run did not end after cancel")
		}
	}
}

func TestRunIDsDistinct(t *testing.T) {
	a, err := Start(context.Background(), t.TempDir(), []string{"true"})
	require.NoError(t, err)
	b, err := Start(context.Background(), t.TempDir(), []string{"true"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	drain(t, a)
	drain(t, b)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Python 3.12.1", "v3.12.1", true},
		{"Python 3.8", "v3.8.0", true},
		{"Docker Compose version v2.24.5", "v2.24.5", true},
		{"docker-compose version 1.29.2, build unknown", "v1.29.2", true},
		{"no digits here", "", false},
	}
	for _, tt := range tests {
		got, ok := parseVersion(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseVersion(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
