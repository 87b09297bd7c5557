package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Starties/calculators/internal/catalog"
)

// catalogItem wraps a catalog model for the list
type catalogItem struct {
	model catalog.Model
}

func (i catalogItem) Title() string       { return i.model.Name }
func (i catalogItem) Description() string { return i.model.Description }
func (i catalogItem) FilterValue() string { return i.model.FilterValue() }

// MenuConfig holds the catalog menu layout and styles
type MenuConfig struct {
	Title             string
	Width             int
	Height            int
	HelpText          string
	MaxDescLines      int // 0 = unlimited
	ItemStyle         lipgloss.Style
	SelectedItemStyle lipgloss.Style
	InactiveStyle     lipgloss.Style
	DescStyle         lipgloss.Style
	TagStyle          lipgloss.Style
}

// DefaultMenuConfig returns the stock catalog menu configuration
func DefaultMenuConfig() MenuConfig {
	return MenuConfig{
		Title:             "Select a Device",
		Width:             80,
		Height:            20,
		HelpText:          "↑/↓: Navigate • type: Search • Enter: Open • Esc: Clear search • ctrl+c: Quit",
		MaxDescLines:      2,
		ItemStyle:         lipgloss.NewStyle().PaddingLeft(4),
		SelectedItemStyle: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170")),
		InactiveStyle:     lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("240")),
		DescStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TagStyle:          lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	}
}

// catalogDelegate renders one model: title with status badge, wrapped
// description and tags.
type catalogDelegate struct {
	cfg   MenuConfig
	width int
}

func (d catalogDelegate) Height() int {
	if d.cfg.MaxDescLines > 0 {
		return 2 + d.cfg.MaxDescLines
	}
	return 3
}

func (d catalogDelegate) Spacing() int { return 1 }
func (d catalogDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d catalogDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(catalogItem)
	if !ok {
		return
	}

	label := item.model.Name
	if !item.model.Active {
		label += " [" + item.model.Status() + "]"
	}

	var title string
	switch {
	case index == m.Index():
		title = d.cfg.SelectedItemStyle.Render("▸ " + label)
	case !item.model.Active:
		title = d.cfg.InactiveStyle.Render(label)
	default:
		title = d.cfg.ItemStyle.Render(label)
	}

	availableWidth := d.width - 6
	if availableWidth < 20 {
		availableWidth = 20
	}
	desc := wordwrap.String(item.model.Description, availableWidth)
	if d.cfg.MaxDescLines > 0 {
		lines := strings.Split(desc, "\n")
		if len(lines) > d.cfg.MaxDescLines {
			lines = lines[:d.cfg.MaxDescLines]
			lines[len(lines)-1] += "..."
			desc = strings.Join(lines, "\n")
		}
	}

	tags := make([]string, len(item.model.Tags))
	for i, tag := range item.model.Tags {
		tags[i] = "#" + tag
	}

	fmt.Fprintf(w, "%s\n%s\n%s", title,
		d.cfg.ItemStyle.Render(d.cfg.DescStyle.Render(desc)),
		d.cfg.ItemStyle.Render(d.cfg.TagStyle.Render(strings.Join(tags, " "))))
}

// ModelSelectedMsg is sent when an active model is opened from the catalog
type ModelSelectedMsg struct {
	Model catalog.Model
}

// CatalogMenu lists the calculator models with a search box. Typing filters
// through catalog.Search; inactive models cannot be opened.
type CatalogMenu struct {
	list     list.Model
	search   textinput.Model
	cfg      MenuConfig
	delegate catalogDelegate
	status   string
}

// NewCatalogMenu creates the model picker
func NewCatalogMenu(cfg MenuConfig) *CatalogMenu {
	delegate := catalogDelegate{cfg: cfg, width: cfg.Width}

	l := list.New(nil, delegate, cfg.Width, cfg.Height-6)
	l.Title = cfg.Title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	search := textinput.New()
	search.Placeholder = "Search models (e.g. 'Graphing', 'Binary')..."
	search.Prompt = "⌕ "
	search.Focus()

	m := &CatalogMenu{
		list:     l,
		search:   search,
		cfg:      cfg,
		delegate: delegate,
	}
	m.refresh()
	return m
}

// Init starts the cursor blink of the search box
func (m *CatalogMenu) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CatalogMenu) refresh() {
	found := catalog.Search(m.search.Value())
	items := make([]list.Item, len(found))
	for i, model := range found {
		items[i] = catalogItem{model: model}
	}
	m.list.SetItems(items)
	m.list.Select(0)
}

// Query returns the current search text
func (m *CatalogMenu) Query() string {
	return m.search.Value()
}

// Visible returns the models currently listed
func (m *CatalogMenu) Visible() []catalog.Model {
	items := m.list.Items()
	out := make([]catalog.Model, 0, len(items))
	for _, it := range items {
		if ci, ok := it.(catalogItem); ok {
			out = append(out, ci.model)
		}
	}
	return out
}

// Update handles navigation, search input and selection
func (m *CatalogMenu) Update(msg tea.Msg) (*CatalogMenu, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			m.list.CursorUp()
			return m, nil
		case "down":
			m.list.CursorDown()
			return m, nil
		case "pgup":
			m.list.PrevPage()
			return m, nil
		case "pgdown":
			m.list.NextPage()
			return m, nil
		}

		switch {
		case key.Matches(msg, globalKeys.MenuClear):
			m.search.SetValue("")
			m.status = ""
			m.refresh()
			return m, nil
		case key.Matches(msg, globalKeys.MenuOpen):
			item, ok := m.list.SelectedItem().(catalogItem)
			if !ok {
				return m, nil
			}
			if !item.model.Active {
				m.status = fmt.Sprintf("%s is %s", item.model.Name, item.model.Status())
				return m, nil
			}
			m.status = ""
			selected := item.model
			return m, func() tea.Msg { return ModelSelectedMsg{Model: selected} }
		}

		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			m.status = ""
			m.refresh()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// View renders the search box, the list and the help line
func (m *CatalogMenu) View() string {
	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	if len(m.list.Items()) == 0 {
		b.WriteString(helpStyle.Render("No models match " + fmt.Sprintf("%q", m.search.Value())))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.cfg.HelpText))
	return b.String()
}

// SetSize updates the menu dimensions
func (m *CatalogMenu) SetSize(width, height int) {
	const minWidth, minHeight = 40, 12
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	m.cfg.Width = width
	m.cfg.Height = height
	m.list.SetWidth(width)
	m.list.SetHeight(height - 6)
	m.search.Width = width - 4
	m.delegate.width = width
	m.list.SetDelegate(m.delegate)
}
