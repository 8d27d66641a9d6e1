// Package tui implements the terminal theme preview.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/site"
	"github.com/opencode-ai/folio/internal/theme"
	"github.com/opencode-ai/folio/internal/tui/components"
	"github.com/opencode-ai/folio/internal/tui/styles"
)

// Config configures the preview.
type Config struct {
	Registry *theme.Registry
	Mode     theme.Mode
	// Author is shown as loaded; empty fields render the setup hint.
	Author site.Author
}

// Run launches the preview program.
func Run(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type model struct {
	registry *theme.Registry
	mode     theme.Mode
	config   theme.ModeConfiguration
	styles   styles.Styles
	author   site.Author

	width  int
	height int
	view   viewID

	filter    textinput.Model
	filtering bool
}

const (
	minWidth  = 60
	minHeight = 15
)

func newModel(cfg Config) (model, error) {
	if cfg.Registry == nil {
		return model{}, errors.New("theme registry is required")
	}
	mode := cfg.Mode
	if mode == "" {
		mode = theme.ModeDark
	}

	filter := textinput.New()
	filter.Placeholder = "component name"
	filter.Prompt = "/ "
	filter.CharLimit = 40

	m := model{
		registry: cfg.Registry,
		author:   cfg.Author,
		view:     viewPalette,
		filter:   filter,
	}
	if err := m.setMode(mode); err != nil {
		return model{}, err
	}
	return m, nil
}

func (m *model) setMode(mode theme.Mode) error {
	cfg, err := m.registry.Resolve(mode)
	if err != nil {
		return err
	}
	m.mode = mode
	m.config = cfg
	m.styles = styles.BuildStyles(cfg)
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "1":
			m.view = viewPalette
		case "2":
			m.view = viewTypography
		case "3":
			m.view = viewComponents
		case "4":
			m.view = viewSite
		case "g", "tab":
			m.view = nextView(m.view)
		case "m":
			// Both modes are always present in a built registry.
			_ = m.setMode(m.mode.Opposite())
		case "/":
			m.view = viewComponents
			m.filtering = true
			return m, m.filter.Focus()
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.SetValue("")
		m.filter.Blur()
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	lines := []string{
		m.styles.Title.Render("Theme preview") + "  " + components.RenderModeBadge(m.styles, m.mode),
		m.styles.Muted.Render(viewTitle(m.view)),
		"",
	}
	lines = append(lines, m.viewLines()...)
	lines = append(lines, "", components.RenderFooter(m.styles, components.PreviewQuickActions(string(m.mode), m.filtering), m.width))

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

type viewID int

const (
	viewPalette viewID = iota
	viewTypography
	viewComponents
	viewSite
)

func nextView(current viewID) viewID {
	switch current {
	case viewPalette:
		return viewTypography
	case viewTypography:
		return viewComponents
	case viewComponents:
		return viewSite
	default:
		return viewPalette
	}
}

func viewTitle(view viewID) string {
	switch view {
	case viewTypography:
		return "Typography"
	case viewComponents:
		return "Component overrides"
	case viewSite:
		return "Site"
	default:
		return "Palette"
	}
}

func (m model) viewLines() []string {
	switch m.view {
	case viewTypography:
		return m.typographyLines()
	case viewComponents:
		return m.componentLines()
	case viewSite:
		return m.siteLines()
	default:
		return m.paletteLines()
	}
}

func (m model) paletteLines() []string {
	p := m.config.Palette
	bg := p.Background.Default

	var lines []string
	for _, role := range p.Roles() {
		token := role.Token.Filled()
		lines = append(lines, m.styles.Heading.Render(role.Name))
		lines = append(lines,
			"  "+styles.Swatch("main", token.Main, bg),
			"  "+styles.Swatch("light", token.Light, bg),
			"  "+styles.Swatch("dark", token.Dark, bg),
		)
	}

	lines = append(lines, m.styles.Heading.Render("surfaces"))
	lines = append(lines,
		"  "+styles.Swatch("background.default", p.Background.Default, bg),
		"  "+styles.Swatch("background.paper", p.Background.Paper, bg),
		"  "+styles.Swatch("text.primary", p.Text.Primary, bg),
		"  "+styles.Swatch("text.secondary", p.Text.Secondary, bg),
		"  "+styles.Swatch("divider", p.Divider, bg),
		"  "+styles.Swatch("action.hover", p.Action.Hover, bg),
	)
	return lines
}

func (m model) typographyLines() []string {
	t := m.config.Typography
	lines := []string{m.styles.Muted.Render(t.FontFamily), ""}
	for _, variant := range t.Variants() {
		style := variant.Style
		sample := m.styles.Text
		if style.FontWeight >= 600 {
			sample = sample.Copy().Bold(true)
		}
		weight, lineHeight := "-", "-"
		if style.FontWeight > 0 {
			weight = strconv.Itoa(style.FontWeight)
		}
		if style.LineHeight > 0 {
			lineHeight = strconv.FormatFloat(style.LineHeight, 'g', -1, 64)
		}
		label := fmt.Sprintf("%-9s %-8s %3s  %-4s", variant.Name, style.FontSize, weight, lineHeight)
		lines = append(lines, m.styles.Muted.Render(label)+"  "+sample.Render("The quick brown fox"))
	}
	lines = append(lines, "", m.styles.Muted.Render(fmt.Sprintf("radius %dpx  spacing %s  shadows %d", m.config.Shape.BorderRadius, m.config.Spacing(1), theme.ShadowCount)))
	return lines
}

func (m model) componentLines() []string {
	var lines []string
	if m.filtering || m.filter.Value() != "" {
		lines = append(lines, m.filter.View(), "")
	}

	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	var names []string
	for _, name := range m.config.ComponentNames() {
		if query == "" || strings.Contains(strings.ToLower(name), query) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return append(lines, components.EmptyComponentsFiltered(m.filter.Value()).Render(m.styles))
	}

	for _, name := range names {
		component := m.config.Components[name]
		slots := component.SlotNames()
		if component.CSS != "" {
			slots = []string{"stylesheet"}
		}
		if len(component.DefaultProps) > 0 {
			slots = append(slots, "defaultProps")
		}
		lines = append(lines, fmt.Sprintf("%s %s", m.styles.Accent.Render(fmt.Sprintf("%-16s", name)), m.styles.Muted.Render(strings.Join(slots, ", "))))
	}
	return lines
}

func (m model) siteLines() []string {
	if m.author == (site.Author{}) {
		return []string{components.EmptyAuthor().Render(m.styles)}
	}

	author := m.author.WithDefaults()
	avatar := m.styles.Muted.Render("initials avatar")
	if author.HasAvatar() {
		avatar = m.styles.Accent.Render(author.AvatarURL)
	}
	card := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(author.Name),
		m.styles.Muted.Render(author.Headline),
		avatar,
	)
	chips := make([]string, 0, len(site.DefaultAbout().Skills))
	for _, name := range site.DefaultAbout().SkillNames() {
		chips = append(chips, m.styles.Chip.Render(name))
	}
	lines := []string{
		m.styles.Panel.Render(card),
		"",
		m.styles.Button.Render("Contact") + "  " + m.styles.Chip.Render(author.Initials()),
		"",
		strings.Join(chips, " "),
	}
	return lines
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
