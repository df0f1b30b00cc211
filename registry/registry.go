package registry

import "fmt"

// Options carries per-invocation settings shared by all transformations.
type Options struct {
	// Format is an explicit strftime pattern for the timestamp commands.
	Format string
}

// Func transforms clipboard text.
type Func func(input string, opts Options) (string, error)

// Command is a named transformation with an optional shortcut.
type Command struct {
	Name        string
	Alias       string
	Description string
	Fn          Func
}

// Registry maps command names and aliases to commands.
type Registry struct {
	commands  map[string]Command
	order     []Command
	shortcuts []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd under its name and, if set, its alias.
// It panics if either key is already taken.
func (r *Registry) Register(cmd Command) {
	if cmd.Name == "" {
		panic("command registered without a name")
	}
	if cmd.Fn == nil {
		panic(fmt.Sprintf("command %s registered without a function", cmd.Name))
	}
	r.claim(cmd.Name)
	if cmd.Alias != "" {
		if cmd.Alias == cmd.Name {
			panic(fmt.Sprintf("command %s uses its own name as alias", cmd.Name))
		}
		r.claim(cmd.Alias)
	}

	r.commands[cmd.Name] = cmd
	if cmd.Alias != "" {
		r.commands[cmd.Alias] = cmd
		r.shortcuts = append(r.shortcuts, cmd.Alias)
	}
	r.order = append(r.order, cmd)
}

func (r *Registry) claim(key string) {
	if _, exists := r.commands[key]; exists {
		panic(fmt.Sprintf("command %s already registered", key))
	}
}

// Lookup returns the command registered under token and whether it exists.
// Only exact names and aliases match.
func (r *Registry) Lookup(token string) (Command, bool) {
	c, ok := r.commands[token]
	return c, ok
}

// Names returns the full command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, c := range r.order {
		names = append(names, c.Name)
	}
	return names
}

// Shortcuts returns the registered aliases in registration order.
func (r *Registry) Shortcuts() []string {
	out := make([]string, len(r.shortcuts))
	copy(out, r.shortcuts)
	return out
}

// Commands returns every registered command once, in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.order))
	copy(out, r.order)
	return out
}
