package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/clipcmd/commands"
	"github.com/andareed/clipcmd/registry"
	"github.com/andareed/clipcmd/timeconv"
	"github.com/andareed/clipcmd/transform"
)

type memClipboard struct {
	text     string
	writes   int
	readErr  error
	writeErr error
}

func (m *memClipboard) ReadAll() (string, error) { return m.text, m.readErr }

func (m *memClipboard) WriteAll(text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.text = text
	return nil
}

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	conv, err := timeconv.NewConverter()
	require.NoError(t, err)
	return commands.NewRegistry(conv)
}

func TestRunTransformsClipboard(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		token, clip, want string
	}{
		{"defang", "  https://example.com/a \n", "hxxps[://]example[.]com/a"},
		{"f", "hxxp[://]x[.]io", "http://x.io"},
		{"u", "\tshout\t", "SHOUT"},
		{"utc", "2024-01-15 12:00:00 MT\n", "2024-01-15 19:00:00 UTC"},
		{"mdt", "2024-07-15 18:00:00 UTC", "2024-07-15 12:00:00 MT"},
		{"be", "hello", "aGVsbG8="},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			clip := &memClipboard{text: tt.clip}
			require.NoError(t, run(reg, tt.token, clip, registry.Options{}, nil))
			assert.Equal(t, tt.want, clip.text)
			assert.Equal(t, 1, clip.writes)
		})
	}
}

func TestRunPassesFormat(t *testing.T) {
	reg := newTestRegistry(t)
	clip := &memClipboard{text: "15.01.2024 12:00"}

	require.NoError(t, run(reg, "to_utc", clip, registry.Options{Format: "%d.%m.%Y %H:%M"}, nil))
	assert.Equal(t, "2024-01-15 19:00:00 UTC", clip.text)
}

func TestRunUnknownCommand(t *testing.T) {
	reg := newTestRegistry(t)
	clip := &memClipboard{text: "whatever"}

	err := run(reg, "zzz", clip, registry.Options{}, nil)

	var unknown *UnknownCommandError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "zzz", unknown.Token)
	assert.Equal(t, "Invalid command: zzz", clip.text)
}

func TestRunFailureLeavesClipboard(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name, token, clip string
		target            any
	}{
		{"bad timestamp", "utc", "not a time", new(*timeconv.ParseError)},
		{"bad base64", "bd", "***", new(*transform.EncodingError)},
		{"bad escape", "ud", "50%off", new(*transform.EncodingError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &memClipboard{text: tt.clip}
			err := run(reg, tt.token, clip, registry.Options{}, nil)
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.target)
			assert.Equal(t, tt.clip, clip.text)
			assert.Zero(t, clip.writes)
		})
	}
}

func TestRunClipboardErrors(t *testing.T) {
	reg := newTestRegistry(t)

	readErr := errors.New("no clipboard")
	err := run(reg, "u", &memClipboard{readErr: readErr}, registry.Options{}, nil)
	assert.ErrorIs(t, err, readErr)

	writeErr := errors.New("read only")
	err = run(reg, "u", &memClipboard{text: "x", writeErr: writeErr}, registry.Options{}, nil)
	assert.ErrorIs(t, err, writeErr)
}

func TestRunEcho(t *testing.T) {
	reg := newTestRegistry(t)
	clip := &memClipboard{text: "quiet"}
	var out bytes.Buffer

	require.NoError(t, run(reg, "upper", clip, registry.Options{}, &out))
	assert.Equal(t, "QUIET\n", out.String())
}

func TestRunIsDeterministic(t *testing.T) {
	reg := newTestRegistry(t)

	for _, name := range reg.Names() {
		first, err1 := dispatch(reg, name, "2024-01-15 12:00:00", registry.Options{})
		second, err2 := dispatch(reg, name, "2024-01-15 12:00:00", registry.Options{})
		assert.Equal(t, err1, err2, name)
		assert.Equal(t, first, second, name)
	}
}

func TestCommandTokenArgs(t *testing.T) {
	reg := newTestRegistry(t)

	tok, err := commandToken(reg, []string{"d"})
	require.NoError(t, err)
	assert.Equal(t, "d", tok)

	_, err = commandToken(reg, []string{"d", "f"})
	assert.Error(t, err)
}
