// Package tui provides the interactive node picker for rzo.
//
// The picker lists the nodes of a resolved config and lets the user pick one:
//
//	result, err := tui.RunPicker(validate.Nodes(doc))
//	switch result.Action {
//	case tui.ActionSelect:
//	    // result.Node holds the chosen node
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// Keys: enter (select), / (filter), q or esc (quit). SimplePicker renders
// the same listing without a terminal, for non-interactive output.
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - list component
//   - github.com/charmbracelet/lipgloss - Styling
package tui
