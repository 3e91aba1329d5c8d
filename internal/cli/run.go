package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/composer/internal/config"
	"github.com/aretw0/composer/internal/dto"
	"github.com/aretw0/composer/internal/logging"
	"github.com/aretw0/composer/internal/presentation/tree"
	"github.com/aretw0/composer/internal/presentation/tui"
	"github.com/aretw0/composer/pkg/domain"
	"golang.org/x/term"
)

// RunOptions contains all the configuration for the run and show commands.
type RunOptions struct {
	ConfigPath string
	Debug      bool
	Rich       bool
	NoBanner   bool
	Demo       bool
}

// Execute starts an interactive session on stdin/stdout.
func Execute(ctx context.Context, opts RunOptions) error {
	settings, err := resolveSettings(&opts)
	if err != nil {
		return err
	}

	logger, err := createLogger(opts.Debug, settings.LogLevel)
	if err != nil {
		return err
	}

	k, err := initialComposition(opts, settings)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !opts.NoBanner {
		tui.PrintBanner(os.Stdout)
	}

	sessionOpts := []Option{WithLogger(logger), WithComposition(k)}
	if opts.Rich {
		r, err := tui.NewRenderer(terminalWidth())
		if err != nil {
			logger.Warn("Rich Rendering Disabled", "error", err)
		} else {
			sessionOpts = append(sessionOpts, WithRenderer(r))
		}
	}

	return NewSession(os.Stdin, os.Stdout, sessionOpts...).Run(ctx)
}

// Show prints the seed composition and exits.
func Show(w io.Writer, opts RunOptions) error {
	settings, err := resolveSettings(&opts)
	if err != nil {
		return err
	}

	k, err := initialComposition(opts, settings)
	if err != nil {
		return err
	}
	if k == nil {
		return fmt.Errorf("nothing to show: pass --config with a composition or --demo")
	}

	if opts.Rich {
		r, err := tui.NewRenderer(terminalWidth())
		if err != nil {
			return err
		}
		out, err := r(tree.Markdown(k))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	}

	_, err = fmt.Fprint(w, tree.Render(k))
	return err
}

// resolveSettings loads the config file and merges it into opts.
// Flags that are set win over the file.
func resolveSettings(opts *RunOptions) (*dto.Settings, error) {
	if opts.ConfigPath == "" {
		return &dto.Settings{}, nil
	}

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	opts.Rich = opts.Rich || settings.Rich
	opts.NoBanner = opts.NoBanner || settings.NoBanner
	return settings, nil
}

func initialComposition(opts RunOptions, settings *dto.Settings) (*domain.Composition, error) {
	if settings.Composition != nil {
		return config.BuildComposition(settings.Composition)
	}
	if opts.Demo {
		return config.Demo(), nil
	}
	return nil, nil
}

// createLogger configures the application logger.
// --debug forces debug output; otherwise a configured level turns logging on.
func createLogger(debug bool, level string) (*slog.Logger, error) {
	if debug {
		return logging.New(slog.LevelDebug), nil
	}
	if level == "" {
		return logging.NewNop(), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
