// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	breadcrumbStyle = lipgloss.NewStyle().Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)

	// Grid cells: groups and tasks differ only in the key colour.
	groupKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	taskKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	arrowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Footer
	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // Bright blue for key

	footerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")) // Light grey for description
)
