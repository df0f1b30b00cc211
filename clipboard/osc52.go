package clipboard

import (
	"errors"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/andareed/clipcmd/logging"
)

func (s *System) copyOSC52(text string) error {
	if !s.osc52Supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stderr not TTY or TERM=dumb)")
		return errors.New("clipboard unavailable (OSC52 unsupported by terminal)")
	}

	seq := osc52.New(text)
	switch {
	case s.tmux:
		seq = seq.Tmux()
	case strings.HasPrefix(s.term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(s.out); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func (s *System) osc52Supported() bool {
	if s.term == "" || strings.EqualFold(s.term, "dumb") {
		return false
	}
	return s.tty
}
