package terminal

import (
	"context"
	"time"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/math"
	"github.com/vadiminshakov/factorial/ui"
)

// Evaluate parses input, applies the configured limit and returns the
// formatted result line.
func Evaluate(ctx context.Context, input string, cfg config.Config) (string, error) {
	x, err := math.ParseInput(input)
	if err != nil {
		return "", err
	}

	if err := math.CheckLimit(x, cfg.MaxInput); err != nil {
		return "", err
	}

	result, err := math.FactorialContext(ctx, x)
	if err != nil {
		return "", err
	}

	return ui.FormatResult(x, result), nil
}

// EvaluateWithin is Evaluate with its own deadline. A zero timeout
// leaves the computation bounded only by ctx.
func EvaluateWithin(ctx context.Context, input string, cfg config.Config, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return Evaluate(ctx, input, cfg)
}
