package lesson

import (
	"time"

	"github.com/abhisek/dojo/internal/checker"
	"github.com/abhisek/dojo/internal/ui/markdown"
)

// loadedMsg is sent when the lesson body has been read and parsed.
type loadedMsg struct {
	blocks []markdown.Block
	err    error
}

// runStartedMsg is sent when a check process has started.
type runStartedMsg struct {
	run  *checker.Run
	kind runKind
}

// runFailedMsg is sent when a check could not start at all.
type runFailedMsg struct {
	err error
}

// runEventMsg carries one line (or the final result) of a check run.
// The id guards against output from a superseded run.
type runEventMsg struct {
	id string
	ev checker.Event
}

// spinnerTickMsg animates the running indicator.
type spinnerTickMsg time.Time

// statusSavedMsg is sent after the completion status write-through.
type statusSavedMsg struct {
	err error
}
