// Package clipboard reads and writes the system clipboard as plain text.
// Writes fall back to an OSC52 escape sequence when the system clipboard
// is unavailable but a terminal is attached.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"

	"github.com/andareed/clipcmd/logging"
)

// ErrUnsupported is returned when no clipboard backend exists on this platform.
var ErrUnsupported = fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)

// System is the OS clipboard.
type System struct {
	read  func() (string, error)
	write func(string) error

	// OSC52 fallback target
	term string
	out  io.Writer
	tty  bool
	tmux bool
}

// New returns the system clipboard, falling back to OSC52 on stderr.
func New() *System {
	return &System{
		read:  clipboard.ReadAll,
		write: clipboard.WriteAll,
		term:  os.Getenv("TERM"),
		out:   os.Stderr,
		tty:   isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
		tmux:  os.Getenv("TMUX") != "",
	}
}

// ReadAll returns the clipboard text.
func (s *System) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	text, err := s.read()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	logging.Infof("Clipboard: read %d bytes", len(text))
	return text, nil
}

// WriteAll replaces the clipboard text, falling back to OSC52.
func (s *System) WriteAll(text string) error {
	var err error
	if clipboard.Unsupported {
		err = ErrUnsupported
	} else {
		err = s.write(text)
	}
	if err == nil {
		logging.Infof("Clipboard: wrote %d bytes", len(text))
		return nil
	}

	logging.Warnf("Clipboard: system write failed, trying OSC52: %v", err)
	if oscErr := s.copyOSC52(text); oscErr != nil {
		return fmt.Errorf("write clipboard: %w", errors.Join(err, oscErr))
	}
	return nil
}
