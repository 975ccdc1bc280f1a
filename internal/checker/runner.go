// Package checker runs the external dependency and solution check
// scripts that grade a lesson, streaming their output line by line.
package checker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Event is one unit of run output. The final event has Done set; its
// Err carries the run outcome (nil means every step exited zero).
type Event struct {
	Line   string
	Stderr bool
	Done   bool
	Err    error
}

// Run is one in-flight check. Events closes after the Done event, and
// the ID distinguishes output of concurrent or superseded runs.
type Run struct {
	ID     string
	Events <-chan Event

	cancel context.CancelFunc
}

// Cancel kills the underlying process. The Done event still arrives.
func (r *Run) Cancel() { r.cancel() }

// Start launches the argv steps in dir, one after another, stopping at
// the first failure. The first step must start successfully; later
// step failures surface through the Done event.
func Start(ctx context.Context, dir string, steps ...[]string) (*Run, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("no command to run")
	}
	ctx, cancel := context.WithCancel(ctx)
	events := make(chan Event, 64)
	run := &Run{ID: uuid.New().String(), Events: events, cancel: cancel}

	first, err := startStep(ctx, dir, steps[0])
	if err != nil {
		cancel()
		return nil, err
	}

	go func() {
		defer close(events)
		defer cancel()

		err := first.wait(events)
		for _, argv := range steps[1:] {
			if err != nil {
				break
			}
			step, startErr := startStep(ctx, dir, argv)
			if startErr != nil {
				err = startErr
				break
			}
			err = step.wait(events)
		}
		events <- Event{Done: true, Err: err}
	}()
	return run, nil
}

type step struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr io.ReadCloser
}

func startStep(ctx context.Context, dir string, argv []string) (*step, error) {
	log.Debug("running check step", "dir", dir, "argv", argv)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	// Bound Wait after cancellation even if a grandchild keeps the
	// pipes open.
	cmd.WaitDelay = 3 * time.Second
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}
	return &step{cmd: cmd, stdout: stdout, stderr: stderr}, nil
}

// wait streams both pipes until EOF, then reaps the process.
func (s *step) wait(events chan<- Event) error {
	var g errgroup.Group
	g.Go(func() error { return streamLines(s.stdout, false, events) })
	g.Go(func() error { return streamLines(s.stderr, true, events) })
	streamErr := g.Wait()
	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(s.cmd.Path), err)
	}
	return streamErr
}

func streamLines(r io.Reader, stderr bool, events chan<- Event) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		events <- Event{Line: sc.Text(), Stderr: stderr}
	}
	return sc.Err()
}

// CheckDependencies runs the workshop's deps.py with python. The run
// passes when the script exits zero.
func CheckDependencies(ctx context.Context, python, script string) (*Run, error) {
	return Start(ctx, filepath.Dir(script), []string{python, script})
}

// CheckSolution brings the lesson's compose environment up, then runs
// check.py against it. The run passes when both steps exit zero.
func CheckSolution(ctx context.Context, python string, compose []string, lessonDir string) (*Run, error) {
	up := append(append([]string{}, compose...), "up", "-d")
	return Start(ctx, lessonDir, up, []string{python, checkScript})
}

const checkScript = "check.py"
