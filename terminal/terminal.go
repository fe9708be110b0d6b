package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/ui"
)

// spinners only appear for computations slower than this
const spinnerDelay = 300 * time.Millisecond

type inputReader interface {
	ReadInput() (string, bool)
}

// RunTerminal runs the interactive REPL until the user exits. A positive
// timeout bounds each computation separately.
func RunTerminal(ctx context.Context, cfg config.Config, timeout time.Duration) error {
	s := &session{cfg: cfg, timeout: timeout, out: os.Stdout, errOut: os.Stderr}

	repl, err := ui.NewREPL(cfg, func(c config.Config) {
		s.cfg = c
		ui.SetColor(c.Color)
	})
	if err != nil {
		return err
	}
	defer repl.Close()
	repl.ShowWelcome()

	return s.loop(ctx, repl)
}

type session struct {
	cfg     config.Config
	timeout time.Duration
	out     io.Writer
	errOut  io.Writer
}

func (s *session) loop(ctx context.Context, in inputReader) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		input, shouldExit := in.ReadInput()
		if shouldExit {
			break
		}

		if input == "" {
			continue
		}

		s.evaluate(ctx, input)
	}

	return nil
}

func (s *session) evaluate(ctx context.Context, input string) {
	start := time.Now()

	// the spinner is armed with a delay so quick answers do not flicker
	started := make(chan *ui.Spinner, 1)
	timer := time.AfterFunc(spinnerDelay, func() {
		started <- ui.ShowComputing(s.errOut, input+"!")
	})

	line, err := EvaluateWithin(ctx, input, s.cfg, s.timeout)

	if !timer.Stop() {
		spinner := <-started
		spinner.Stop()
		ui.ShowElapsed(s.errOut, time.Since(start))
	}

	if err != nil {
		ui.ShowError(s.errOut, err)
		return
	}

	fmt.Fprintln(s.out, line)
}
