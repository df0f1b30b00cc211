package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upperFn(s string, _ Options) (string, error) { return strings.ToUpper(s), nil }
func lowerFn(s string, _ Options) (string, error) { return strings.ToLower(s), nil }

func TestRegistryRegisterLookup(t *testing.T) {
	r := New()
	r.Register(Command{Name: "upper", Alias: "u", Fn: upperFn})
	r.Register(Command{Name: "lower", Fn: lowerFn})

	for _, token := range []string{"upper", "u"} {
		c, ok := r.Lookup(token)
		require.True(t, ok, "token %q", token)
		out, err := c.Fn("abc", Options{})
		require.NoError(t, err)
		assert.Equal(t, "ABC", out)
		assert.Equal(t, "upper", c.Name)
	}

	c, ok := r.Lookup("lower")
	require.True(t, ok)
	assert.Empty(t, c.Alias)
}

func TestRegistryLookupIsExact(t *testing.T) {
	r := New()
	r.Register(Command{Name: "upper", Alias: "u", Fn: upperFn})

	for _, token := range []string{"", "up", "UPPER", "upper ", "U"} {
		_, ok := r.Lookup(token)
		assert.False(t, ok, "token %q should not resolve", token)
	}
}

func TestRegistryOrder(t *testing.T) {
	r := New()
	r.Register(Command{Name: "defang", Alias: "d", Fn: lowerFn})
	r.Register(Command{Name: "fang", Alias: "f", Fn: lowerFn})
	r.Register(Command{Name: "plain", Fn: lowerFn})
	r.Register(Command{Name: "help", Alias: "h", Fn: lowerFn})

	assert.Equal(t, []string{"defang", "fang", "plain", "help"}, r.Names())
	assert.Equal(t, []string{"d", "f", "h"}, r.Shortcuts())

	cmds := r.Commands()
	require.Len(t, cmds, 4)
	assert.Equal(t, "plain", cmds[2].Name)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	tests := []struct {
		name   string
		second Command
	}{
		{"same name", Command{Name: "dup", Fn: lowerFn}},
		{"alias collides with name", Command{Name: "other", Alias: "dup", Fn: lowerFn}},
		{"name collides with alias", Command{Name: "x", Fn: lowerFn}},
		{"alias collides with alias", Command{Name: "other", Alias: "x", Fn: lowerFn}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.Register(Command{Name: "dup", Alias: "x", Fn: upperFn})
			assert.Panics(t, func() { r.Register(tt.second) })
		})
	}
}

func TestRegistryRejectsIncompleteCommands(t *testing.T) {
	r := New()
	assert.Panics(t, func() { r.Register(Command{Fn: lowerFn}) })
	assert.Panics(t, func() { r.Register(Command{Name: "nofn"}) })
	assert.Panics(t, func() { r.Register(Command{Name: "self", Alias: "self", Fn: lowerFn}) })
}

func TestRegistryAccessorsReturnCopies(t *testing.T) {
	r := New()
	r.Register(Command{Name: "upper", Alias: "u", Fn: upperFn})

	s := r.Shortcuts()
	s[0] = "mutated"
	assert.Equal(t, []string{"u"}, r.Shortcuts())

	c := r.Commands()
	c[0].Name = "mutated"
	assert.Equal(t, "upper", r.Commands()[0].Name)
}
