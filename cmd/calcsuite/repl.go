package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Starties/calculators/internal/logger"
	"github.com/Starties/calculators/internal/scientific"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Line-mode scientific calculator",
	Long: `Evaluate one expression per line. A line that starts with an operator
continues from the previous result ("+ 1", "* 2").

Commands: :deg :rad switch the angle mode, :frac toggles the last result
between decimal and fraction, :clear forgets it, :quit leaves.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.OutOrStdout())
	},
}

// replSession is the state of one REPL run, independent of readline.
type replSession struct {
	calc  *scientific.Calculator
	state scientific.State
}

func newREPLSession(calc *scientific.Calculator, angle scientific.AngleMode) *replSession {
	return &replSession{calc: calc, state: scientific.NewState(angle)}
}

func (r *replSession) prompt() string {
	return r.state.Angle.String() + "> "
}

// handle processes one input line and returns the text to print, and
// whether the session should end.
func (r *replSession) handle(line string) (string, bool) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return "", false
	case ":quit", ":q", ":exit":
		return "", true
	case ":deg":
		r.state.Angle = scientific.Degrees
		return "angle mode " + r.state.Angle.String(), false
	case ":rad":
		r.state.Angle = scientific.Radians
		return "angle mode " + r.state.Angle.String(), false
	case ":clear":
		r.state = r.state.Clear()
		return "0", false
	case ":frac":
		if !r.state.HasResult() {
			return "no result", false
		}
		r.state = r.calc.ToggleFraction(r.state)
		return r.state.Result, false
	}
	if strings.HasPrefix(line, ":") {
		return fmt.Sprintf("unknown command %s", line), false
	}

	r.state = r.calc.EvaluateText(r.state, line)
	if r.state.Error {
		return color.RedString("%s", r.state.Result), false
	}
	return r.state.Result, false
}

func runREPL(w io.Writer) error {
	session := newREPLSession(scientific.New(nil, cfg.FormatOptions()), cfg.Angle())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          session.prompt(),
		HistoryFile:     filepath.Join(filepath.Dir(configPath()), "repl_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
		Stdout:          w,
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer func() { _ = rl.Close() }()

	logger.Info("repl started")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		out, done := session.handle(line)
		if done {
			return nil
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
		rl.SetPrompt(session.prompt())
	}
}
