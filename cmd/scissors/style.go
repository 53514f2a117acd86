// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// summary prints a bold header followed by aligned label/value lines.
func summary(w io.Writer, header string, kv ...string) {
	fmt.Fprintln(w, headerStyle.Render(header))
	width := 0
	for i := 0; i < len(kv); i += 2 {
		if l := len(kv[i]); l > width {
			width = l
		}
	}
	label := labelStyle.Width(width + 2)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintln(w, label.Render(kv[i]+":")+valueStyle.Render(kv[i+1]))
	}
}
