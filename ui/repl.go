package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
)

// REPLCommands stores command history and provides REPL functionality
type REPLCommands struct {
	history     []string
	historyFile string
	readline    *readline.Instance
	onReconfig  func(config.Config)
}

// createReadline creates a new readline instance with standard configuration
func createReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:            "",
		HistoryFile:       historyFile,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
}

// NewREPL creates a new REPL interface. onReconfig, if not nil, receives
// the configuration produced by the reconfig command.
func NewREPL(cfg config.Config, onReconfig func(config.Config)) (*REPLCommands, error) {
	rl, err := createReadline(cfg.HistoryFile)
	if err != nil {
		return nil, errors.Wrap(err, "init readline")
	}

	return &REPLCommands{
		history:     make([]string, 0),
		historyFile: cfg.HistoryFile,
		readline:    rl,
		onReconfig:  onReconfig,
	}, nil
}

// completer provides auto-completion for built-in commands
var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("clear"),
	readline.PcItem("history"),
	readline.PcItem("reconfig"),
	readline.PcItem("exit"),
)

// Close releases REPL resources
func (r *REPLCommands) Close() {
	if r.readline != nil {
		r.readline.Close()
	}
}

// ShowWelcome prints the welcome message
func (r *REPLCommands) ShowWelcome() {
	fmt.Print("\033[2J\033[H")

	fmt.Println()
	fmt.Println(Header("factorial"))
	fmt.Println()
	fmt.Println(Info("Enter a whole number to get its factorial"))
	fmt.Println(Dim("Available commands: help, clear, history, reconfig, exit"))
	fmt.Println()
}

// GetPrompt returns a styled prompt for user input
func (r *REPLCommands) GetPrompt() string {
	return fmt.Sprintf("%s %s ", BrightBlue("n!"), BrightGreen("❯"))
}

// ReadInput reads a line and handles built-in commands. It returns the
// line to evaluate (empty when there is nothing to do) and whether the
// session should end.
func (r *REPLCommands) ReadInput() (string, bool) {
	r.readline.SetPrompt(r.GetPrompt())

	line, err := r.readline.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", false
		} else if err == io.EOF {
			return "", true
		}
		return "", true
	}

	inputStr := strings.TrimSpace(line)

	if inputStr == "" {
		return "", false
	}

	r.history = append(r.history, inputStr)

	switch inputStr {
	case "exit", "quit":
		return "", true

	case "help":
		r.showHelp()
		return "", false

	case "clear":
		r.clear()
		return "", false

	case "history":
		r.showHistory()
		return "", false

	case "reconfig":
		r.reconfig()
		return "", false

	default:
		return inputStr, false
	}
}

func (r *REPLCommands) showHelp() {
	helpText := `Type a whole number such as 5 to print its factorial.

Commands:
  help     – show this help
  clear    – clear the screen
  history  – show input history
  reconfig – change settings
  exit     – quit the program`

	fmt.Println(helpText)
}

func (r *REPLCommands) clear() {
	fmt.Print("\033[2J\033[H")
}

func (r *REPLCommands) showHistory() {
	fmt.Println()
	if len(r.history) == 0 {
		fmt.Println(Info("History is empty"))
		fmt.Println()
		return
	}

	start := 0
	if len(r.history) > 10 {
		start = len(r.history) - 10
		fmt.Println(Dim("... (showing last 10 inputs)"))
	}

	for i := start; i < len(r.history); i++ {
		fmt.Printf("%s %s\n",
			Dim(fmt.Sprintf("%2d.", i+1)),
			BrightWhite(Truncate(r.history[i], 60)))
	}
	fmt.Println()
}

// ShowError prints the error in a formatted style
func ShowError(w io.Writer, err error) {
	fmt.Fprintln(w, Error(err.Error()))
}

// ShowElapsed prints how long a slow computation took
func ShowElapsed(w io.Writer, d time.Duration) {
	fmt.Fprintln(w, Dim(fmt.Sprintf("computed in %s", d.Round(time.Millisecond))))
}

func (r *REPLCommands) reconfig() {
	fmt.Println()

	// promptui needs the terminal while readline is closed
	if r.readline != nil {
		r.readline.Close()
	}

	cfg, err := config.InteractiveSetup()

	historyFile := r.historyFile
	if err == nil && cfg.HistoryFile != "" {
		historyFile = cfg.HistoryFile
	}

	rl, reinitErr := createReadline(historyFile)
	if reinitErr != nil {
		fmt.Println(Error("failed to reinitialize readline: " + reinitErr.Error()))
		return
	}
	r.readline = rl
	r.historyFile = historyFile

	if err != nil {
		fmt.Println(Error("failed to reconfigure: " + err.Error()))
		fmt.Println()
		return
	}

	if r.onReconfig != nil {
		r.onReconfig(cfg)
	}
	fmt.Println(Success("configuration updated."))
	fmt.Println()
}
