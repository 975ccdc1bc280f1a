// Package logging routes the process-wide logger to a file in the data
// directory and keeps a tail of recent lines for the log screen.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

const logFile = "log.txt"

// Tail retains the most recent rendered log lines.
type Tail struct {
	mu     sync.Mutex
	lines  []string
	max    int
	notify func()
}

// Write splits p into lines and appends them, dropping the oldest past
// the retention limit.
func (t *Tail) Write(p []byte) (int, error) {
	t.mu.Lock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		t.lines = append(t.lines, line)
	}
	if over := len(t.lines) - t.max; over > 0 {
		t.lines = append([]string(nil), t.lines[over:]...)
	}
	notify := t.notify
	t.mu.Unlock()
	if notify != nil {
		notify()
	}
	return len(p), nil
}

// Lines returns a copy of the retained lines, oldest first.
func (t *Tail) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Notify registers fn to run after each write. The app points it at
// the running program so the log screen redraws on new lines.
func (t *Tail) Notify(fn func()) {
	t.mu.Lock()
	t.notify = fn
	t.mu.Unlock()
}

var tail = &Tail{max: 500}

// LogTail returns the process-wide tail.
func LogTail() *Tail { return tail }

// Init points the default logger at log.txt under dir and the tail.
// DOJO_LOG sets the level (debug, info, warn, error); default info.
func Init(dir string) (io.Closer, error) {
	f, err := os.OpenFile(filepath.Join(dir, logFile),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(f, tail))
	log.SetReportTimestamp(true)
	if env := os.Getenv("DOJO_LOG"); env != "" {
		if lvl, err := log.ParseLevel(env); err == nil {
			log.SetLevel(lvl)
		}
	}
	return f, nil
}
