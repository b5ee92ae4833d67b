// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	// calendar cells
	selectedDayStyle = lipgloss.NewStyle().Reverse(true)
	todayStyle       = lipgloss.NewStyle().Bold(true).Underline(true)
	outMonthStyle    = lipgloss.NewStyle().Faint(true)
	pastDayStyle     = lipgloss.NewStyle().Faint(true)
)
