package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/composer/internal/logging"
	"github.com/aretw0/composer/internal/presentation/tui"
	"github.com/aretw0/composer/pkg/domain"
	"github.com/google/uuid"
)

// ErrNoComposition is reported when a command needs an active composition.
var ErrNoComposition = errors.New("no active composition, create one first (option 1)")

// Session is one run of the interactive menu.
// It owns exactly one active composition at a time.
type Session struct {
	ID string

	composition *domain.Composition
	reader      *bufio.Reader
	writer      io.Writer
	logger      *slog.Logger
	renderer    tui.Renderer
}

// Option configures a Session.
type Option func(*Session)

// WithComposition sets the composition the session starts with.
func WithComposition(k *domain.Composition) Option {
	return func(s *Session) {
		s.composition = k
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithRenderer displays the architecture through a Markdown renderer.
func WithRenderer(r tui.Renderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// NewSession creates a session reading commands from r and writing to w.
func NewSession(r io.Reader, w io.Writer, opts ...Option) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		reader: bufio.NewReader(r),
		writer: w,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.ID)
	return s
}

// Composition returns the active composition, or nil.
func (s *Session) Composition() *domain.Composition {
	return s.composition
}

// Run shows the menu until the user exits, the input ends or ctx is done.
// End of input is a normal exit.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("Session Started")
	defer s.logger.Info("Session Finished")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return endOfInput(err)
		}

		cmd, ok := lookupCommand(choice)
		if !ok {
			s.println("Unknown choice '%s'.", choice)
			continue
		}
		if cmd.exit {
			s.println("Bye!")
			return nil
		}

		if err := cmd.run(s); err != nil {
			if isEOF(err) {
				return nil
			}
			s.logger.Debug("Command Failed", "command", cmd.label, "error", err)
			s.println("Error: %v", err)
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.writer)
	fmt.Fprintln(s.writer, "              MENU           ")
	for _, cmd := range menu {
		fmt.Fprintf(s.writer, "%s-- %s\n", cmd.key, cmd.label)
	}
}

// prompt prints label and reads one trimmed line.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.writer, label)

	text, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && text != "" {
			return strings.TrimSpace(text), nil
		}
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// promptPair reads a line holding exactly two space separated fields.
func (s *Session) promptPair(label string) (string, string, error) {
	line, err := s.prompt(label)
	if err != nil {
		return "", "", err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("expected two values separated by a space, got %q", line)
	}
	return fields[0], fields[1], nil
}

func (s *Session) println(format string, args ...any) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

func (s *Session) requireComposition() (*domain.Composition, error) {
	if s.composition == nil {
		return nil, ErrNoComposition
	}
	return s.composition, nil
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

func endOfInput(err error) error {
	if isEOF(err) {
		return nil
	}
	return err
}
