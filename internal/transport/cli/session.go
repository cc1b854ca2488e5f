package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/sandevgo/deptdir/internal/core"
	"github.com/sandevgo/deptdir/internal/service/command"
	"github.com/sandevgo/deptdir/internal/service/directory"
	"github.com/sandevgo/deptdir/pkg/log"
)

type LineReader interface {
	Readline() (string, error)
}

type Option func(*Session)

// WithReasonStyle decorates the reason printed for rejected commands.
func WithReasonStyle(fn func(string) string) Option {
	return func(s *Session) {
		s.styleReason = fn
	}
}

// WithCompany sets the company name reported when the session starts.
func WithCompany(name string) Option {
	return func(s *Session) {
		s.company = name
	}
}

func withCloser(c io.Closer) Option {
	return func(s *Session) {
		s.closer = c
	}
}

// Session reads commands line by line and applies them to a directory owned by
// the session. It is not safe for concurrent use.
type Session struct {
	reader      LineReader
	out         io.Writer
	closer      io.Closer
	company     string
	styleReason func(string) string
	dir         directory.Directory
}

func NewSession(reader LineReader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		reader:      reader,
		out:         out,
		styleReason: func(reason string) string { return reason },
		dir:         directory.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs the read loop until quit, EOF, or Ctrl+C on an empty line.
func (s *Session) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Str("company", s.company).Msg("directory session started. Type 'quit' to exit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := s.reader.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		switch cmd := command.Parse(line).(type) {
		case core.EmptyCommand:
			continue
		case core.TerminateCommand:
			logger.Info().Int("assignments", s.dir.Len()).Msg("directory session finished")
			return nil
		case core.IllegalCommand:
			logger.Debug().Str("reason", cmd.Reason).Msg("command rejected")
			if err := s.print(s.styleReason(cmd.Reason)); err != nil {
				return err
			}
		default:
			var res string
			res, s.dir = command.React(s.dir, cmd)
			logger.Debug().Str("command", cmd.Name()).Int("assignments", s.dir.Len()).Msg("command applied")
			if err := s.print(res); err != nil {
				return err
			}
		}
	}
}

func (s *Session) Shutdown(ctx context.Context) error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// Directory returns the current state of the session's directory.
func (s *Session) Directory() directory.Directory {
	return s.dir
}

func (s *Session) print(res string) error {
	if _, err := fmt.Fprintln(s.out, res); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
