package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"showcase/internal/core/domain"
	"showcase/internal/core/services"
	"showcase/pkg/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactive collection browser",
	Long: `Browse the categorized collection interactively.

Vim Navigation:
- k / ↑ : Move Up
- j / ↓ : Move Down
- l / → : Enter Category
- h / ← : Back to Categories
- o     : Open Template in Browser
- q     : Quit`,
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := catalogService.Execute(ctx, services.BuildRequest{
		TemplatesDir:  appConfig.TemplatesDir,
		ThumbnailsDir: appConfig.ThumbnailsDir,
	})
	if err != nil {
		return fmt.Errorf("failed to scan the collection: %w", err)
	}

	if resp.Catalog.Total == 0 {
		fmt.Println(ui.FormatWarning("The collection is empty."))
		return nil
	}

	p := tea.NewProgram(newExploreModel(resp.Catalog))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// --- TUI Model ---

type exploreKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Open  key.Binding
	Quit  key.Binding
}

func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Open, k.Quit}
}

func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Enter, k.Back}, {k.Open, k.Quit}}
}

var exploreKeys = exploreKeyMap{
	Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
	Enter: key.NewBinding(key.WithKeys("l", "right", "enter"), key.WithHelp("→/l", "enter")),
	Back:  key.NewBinding(key.WithKeys("h", "left", "esc"), key.WithHelp("←/h", "back")),
	Open:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type exploreModel struct {
	catalog   domain.Catalog
	keys      exploreKeyMap
	help      help.Model
	section   int
	cursor    int
	inSection bool
}

func newExploreModel(catalog domain.Catalog) exploreModel {
	return exploreModel{
		catalog: catalog,
		keys:    exploreKeys,
		help:    help.New(),
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Enter):
			if !m.inSection {
				m.section = m.cursor
				m.cursor = 0
				m.inSection = true
			}

		case key.Matches(msg, m.keys.Back):
			if m.inSection {
				m.cursor = m.section
				m.inSection = false
			}

		case key.Matches(msg, m.keys.Open):
			if m.inSection {
				asset := m.catalog.Sections[m.section].Assets[m.cursor]
				// Best effort: browsing continues even if the open fails
				_ = OpenFile(filepath.Join(appWorkspace.RootPath, asset.TemplatePath))
			}
		}
	}

	return m, nil
}

func (m exploreModel) listLen() int {
	if m.inSection {
		return len(m.catalog.Sections[m.section].Assets)
	}
	return len(m.catalog.Sections)
}

func (m exploreModel) View() string {
	var s strings.Builder

	if !m.inSection {
		s.WriteString(ui.StyleTitle.Render("Categories"))
		s.WriteString("\n\n")
		for i, section := range m.catalog.Sections {
			line := fmt.Sprintf("%s (%d)", section.Category.DisplayName(), len(section.Assets))
			if i == m.cursor {
				s.WriteString(ui.StylePrimary.Render("> " + line))
			} else {
				s.WriteString("  " + line)
			}
			s.WriteString("\n")
		}
	} else {
		section := m.catalog.Sections[m.section]
		s.WriteString(ui.StyleTitle.Render(section.Category.DisplayName()))
		s.WriteString("\n\n")
		for i, asset := range section.Assets {
			if i == m.cursor {
				s.WriteString(ui.StylePrimary.Render("> " + asset.Name))
				s.WriteString("\n")
				s.WriteString(ui.StyleMuted.Render("    " + asset.Description))
			} else {
				s.WriteString("  " + asset.Name)
			}
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys))
	s.WriteString("\n")

	return s.String()
}
