package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/rizzo/internal/document"
	"github.com/firefly-engineering/rizzo/internal/validate"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Node   map[string]any
}

// nodeItem implements list.Item for node display
type nodeItem struct {
	node map[string]any
}

func (i nodeItem) Title() string {
	return validate.NodeName(i.node)
}

func (i nodeItem) Description() string {
	ip, _ := document.String(i.node["ip"])
	if ip == "" {
		ip = "no ip"
	}

	ports := hostPorts(i.node)
	if len(ports) == 0 {
		return ip
	}
	return fmt.Sprintf("%s | ports %s", ip, strings.Join(ports, ","))
}

func (i nodeItem) FilterValue() string {
	return validate.NodeName(i.node)
}

// hostPorts lists the forwarded host ports of a node in config order.
func hostPorts(node map[string]any) []string {
	var ports []string
	for _, entry := range document.List(node["forwarded_ports"]) {
		fp, ok := document.Object(entry)
		if !ok {
			continue
		}
		ports = append(ports, document.BigInt(fp["host"]).String())
	}
	return ports
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the node picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a picker over the given nodes
func NewPicker(nodes []map[string]any) Model {
	items := make([]list.Item, len(nodes))
	for i, node := range nodes {
		items[i] = nodeItem{node: node}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "rizzo - Select Node"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(nodeItem); ok {
				m.result = PickerResult{
					Action: ActionSelect,
					Node:   item.node,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Select  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive node picker
func RunPicker(nodes []map[string]any) (PickerResult, error) {
	if len(nodes) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	p := tea.NewProgram(NewPicker(nodes), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker is a non-interactive listing of nodes
func SimplePicker(nodes []map[string]any) string {
	var sb strings.Builder

	sb.WriteString("rizzo - Nodes\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(nodes) == 0 {
		sb.WriteString("No nodes defined.\n")
		sb.WriteString("Add a nodes list to a control repository's .rizzo.json\n")
		return sb.String()
	}

	for i, node := range nodes {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, nodeItem{node: node}.Title()))
		sb.WriteString(fmt.Sprintf("   %s\n\n", nodeItem{node: node}.Description()))
	}

	return sb.String()
}
