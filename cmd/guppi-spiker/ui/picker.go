package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"spiker/internal/spike"
)

type entryItem struct {
	entry spike.Entry
}

func (i entryItem) Title() string       { return i.entry.Slug }
func (i entryItem) Description() string { return i.entry.Date + "  " + i.entry.Path }
func (i entryItem) FilterValue() string { return i.entry.Slug }

// Picker is a bubbletea model for choosing one spike from a list.
// Enter chooses the highlighted entry; Esc, q, or Ctrl+C cancels.
type Picker struct {
	list      list.Model
	choice    *spike.Entry
	cancelled bool
}

// NewPicker returns a Picker over entries, in the order given.
func NewPicker(entries []spike.Entry) Picker {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 20)
	l.Title = "Spikes"
	l.SetShowHelp(true)
	return Picker{list: l}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetSize(msg.Width, msg.Height)
		return p, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			p.cancelled = true
			return p, tea.Quit
		}
		// While the filter input is open, keys belong to the filter.
		if p.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := p.list.SelectedItem().(entryItem); ok {
				chosen := item.entry
				p.choice = &chosen
			}
			return p, tea.Quit
		case "esc", "q":
			if p.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
				break
			}
			p.cancelled = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p Picker) View() string {
	return p.list.View()
}

// Choice returns the chosen entry, if any.
func (p Picker) Choice() (spike.Entry, bool) {
	if p.choice == nil || p.cancelled {
		return spike.Entry{}, false
	}
	return *p.choice, true
}
