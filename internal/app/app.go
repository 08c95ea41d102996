package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gookit/color"

	"github.com/fw/askline/ask"
	"github.com/fw/askline/internal/ctxlog"
	"github.com/fw/askline/internal/form"
)

var (
	headerStyle = color.New(color.FgCyan, color.OpBold)
	nameStyle   = color.New(color.FgGreen)
)

// App encapsulates the form runner's dependencies and lifecycle.
type App struct {
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
	forms  []*form.Form
	asker  *ask.Asker
}

// New constructs an App with its own isolated logger, loads the configured
// forms, and prepares the prompt session over the given streams. Logs and
// stream diagnostics go to errW so they never interleave with the
// interactive transcript on out.
func New(in io.Reader, out, errW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	forms, err := form.NewLoader().Load(ctx, cfg.FormPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load forms: %w", err)
	}
	logger.Debug("Forms loaded.", "count", len(forms))

	return &App{
		in:     in,
		out:    out,
		logger: logger,
		forms:  forms,
		asker:  ask.New(in, out, ask.WithDiagnostics(errW)),
	}, nil
}

// Forms returns the loaded forms. This is primarily for testing.
func (a *App) Forms() []*form.Form {
	return a.forms
}

// Run asks every question of every loaded form in declaration order and
// prints an answer summary per form. Exhausted input aborts the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	for _, f := range a.forms {
		fmt.Fprintln(a.out, headerStyle.Sprintf("── %s ──", f.Name))

		type answer struct {
			name string
			text string
		}
		answers := make([]answer, 0, len(f.Questions))

		for _, q := range f.Questions {
			vals, err := a.asker.Ask(ctx, q.Prompt)
			if errors.Is(err, ask.ErrEndOfInput) {
				return fmt.Errorf("form %q aborted: %w", f.Name, err)
			}
			if err != nil {
				return fmt.Errorf("form %q question %q: %w", f.Name, q.Name, err)
			}
			answers = append(answers, answer{name: q.Name, text: renderValue(vals[0])})
		}

		fmt.Fprintln(a.out, headerStyle.Sprint("Answers:"))
		for _, ans := range answers {
			fmt.Fprintf(a.out, "  %s = %s\n", nameStyle.Sprint(ans.name), ans.text)
		}
	}
	return nil
}
