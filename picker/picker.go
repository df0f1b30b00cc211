// Package picker is the interactive command chooser shown when clipcmd
// runs on a terminal without a command argument.
package picker

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"

	"github.com/andareed/clipcmd/registry"
)

// ErrCanceled is returned by Run when the user leaves without choosing.
var ErrCanceled = errors.New("no command chosen")

const (
	defaultWidth = 80
	nameWidth    = 26
	aliasWidth   = 5
)

// Picker is the Bubble Tea model listing commands under a search box.
type Picker struct {
	commands []registry.Command
	filtered []registry.Command

	input  textinput.Model
	cursor int
	width  int

	chosen   string
	canceled bool
}

// New returns a picker over commands with the search box focused.
func New(commands []registry.Command) *Picker {
	ti := textinput.New()
	ti.Placeholder = "Search commands..."
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	return &Picker{
		commands: commands,
		filtered: commands,
		input:    ti,
		width:    defaultWidth,
	}
}

// Run shows the picker on out and returns the chosen command name.
func Run(commands []registry.Command, in io.Reader, out io.Writer) (string, error) {
	p := New(commands)
	m, err := tea.NewProgram(p, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", fmt.Errorf("picker: %w", err)
	}
	p = m.(*Picker)
	if p.canceled || p.chosen == "" {
		return "", ErrCanceled
	}
	return p.chosen, nil
}

func (p *Picker) Init() tea.Cmd { return textinput.Blink }

// Chosen is the selected command name, empty until enter is pressed.
func (p *Picker) Chosen() string { return p.chosen }

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = m.Width - 4
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(m, Keys.Cancel):
			p.canceled = true
			return p, tea.Quit
		case key.Matches(m, Keys.Choose):
			if len(p.filtered) == 0 {
				return p, nil
			}
			p.chosen = p.filtered[p.cursor].Name
			log.Printf("Picker: chose %s", p.chosen)
			return p, tea.Quit
		case key.Matches(m, Keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case key.Matches(m, Keys.Down):
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	before := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.filter()
	}
	return p, cmd
}

// filter narrows the list to commands fuzzily matching the query, best first.
func (p *Picker) filter() {
	query := strings.TrimSpace(p.input.Value())
	if query == "" {
		p.filtered = p.commands
		p.cursor = 0
		return
	}

	targets := make([]string, len(p.commands))
	for i, c := range p.commands {
		targets[i] = c.Name + " " + c.Alias + " " + c.Description
	}

	matches := fuzzy.Find(query, targets)
	p.filtered = make([]registry.Command, len(matches))
	for i, m := range matches {
		p.filtered[i] = p.commands[m.Index]
	}
	p.cursor = 0
}

func (p *Picker) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("clipcmd"))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.filtered) == 0 {
		b.WriteString(mutedStyle.Render("  no matching commands"))
		b.WriteString("\n")
	}
	for i, c := range p.filtered {
		b.WriteString(p.renderRow(c, i == p.cursor))
		b.WriteString("\n")
	}

	var hints []string
	for _, k := range Keys.bindings() {
		h := k.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	b.WriteString("\n")
	b.WriteString(helpHintStyle.Render(strings.Join(hints, "   ")))

	return appStyle.Render(b.String())
}

func (p *Picker) renderRow(c registry.Command, selected bool) string {
	line := fmt.Sprintf("%-*s %-*s ", nameWidth, c.Name, aliasWidth, c.Alias)
	descWidth := p.width - len(line) - 2
	if descWidth < 10 {
		descWidth = 10
	}
	desc := truncate.StringWithTail(c.Description, uint(descWidth), "…")

	if selected {
		return rowSelectedStyle.Render("▐ " + line + desc)
	}
	name := fmt.Sprintf("%-*s", nameWidth, c.Name)
	alias := fmt.Sprintf("%-*s", aliasWidth, c.Alias)
	return "  " + rowStyle.Render(name) + " " + aliasStyle.Render(alias) + " " + mutedStyle.Render(desc)
}
