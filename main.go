package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/terminal"
	"github.com/vadiminshakov/factorial/ui"
)

const version = "factorial v0.1.0"

var errUsage = errors.New("usage: factorial [flags] <x>")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ui.SetColor(ui.IsTerminal(os.Stderr))

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		stop()
		log.Fatal(ui.Error(err.Error()))
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("factorial", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		showVersion = fs.Bool("version", false, "Show version information")
		interactive = fs.Bool("i", false, "Start an interactive session")
		fromStdin   = fs.Bool("stdin", false, "Read one integer per line from stdin")
		timeout     = fs.Duration("timeout", 0, "Abandon a computation after this long (0 disables)")
		setup       = fs.Bool("setup", false, "Run interactive configuration and exit")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, errUsage.Error())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version)
		return nil
	}

	if *setup {
		_, err := config.InteractiveSetup()
		return err
	}

	cfg, err := config.LoadConfigFile()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if !cfg.Color {
		ui.SetColor(false)
	}

	switch {
	case *interactive:
		if !ui.IsTerminal(os.Stdin) {
			return errors.New("interactive mode needs a terminal, use -stdin for piped input")
		}
		return terminal.RunTerminal(ctx, cfg, *timeout)

	case *fromStdin:
		return terminal.RunHeadless(ctx, stdin, stdout, stderr, cfg, *timeout)
	}

	// only the first argument counts; anything after it is ignored
	if fs.NArg() < 1 {
		return errors.Wrap(errUsage, "missing argument")
	}

	start := time.Now()
	line, err := terminal.EvaluateWithin(ctx, fs.Arg(0), cfg, *timeout)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errors.Wrapf(err, "gave up after %s", time.Since(start).Round(time.Millisecond))
		}
		return err
	}

	fmt.Fprintln(stdout, line)
	return nil
}
