package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/ui"
)

// RunHeadless answers one integer per input line without any prompt.
// Results go to out, diagnostics to errOut. A positive timeout bounds
// each line's computation, not the whole run. The returned error reports
// how many lines failed, so callers can exit non-zero.
func RunHeadless(ctx context.Context, in io.Reader, out, errOut io.Writer, cfg config.Config, timeout time.Duration) error {
	failed := 0

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())

		if input == "exit" || input == "quit" {
			break
		}

		if input == "" {
			continue
		}

		line, err := EvaluateWithin(ctx, input, cfg, timeout)
		if err != nil {
			failed++
			ui.ShowError(errOut, err)
			if ctx.Err() != nil {
				return errors.Wrap(ctx.Err(), "stdin mode interrupted")
			}
			continue
		}

		fmt.Fprintln(out, line)
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read stdin")
	}

	if failed > 0 {
		return fmt.Errorf("%d input(s) failed", failed)
	}

	return nil
}
