package report

import (
	"fmt"
	"strings"
)

// Badge renders a label/value pair as a 3-line bordered box at least
// minWidth columns wide between the corners. When the content alone is
// wider than minWidth the box widens; content is never truncated.
func Badge(label, value string, minWidth int) string {
	totalWidth := len(label) + len(value) + 4
	if minWidth > totalWidth {
		totalWidth = minWidth
	}

	labelWidth := len(label) + 2
	valueWidth := totalWidth - labelWidth
	if valueWidth < 1 {
		valueWidth = 1
	}

	border := strings.Repeat("─", totalWidth)
	labelPart := fmt.Sprintf(" %-*s", labelWidth-2, label)
	valuePart := fmt.Sprintf(" %-*s ", valueWidth-2, value)

	return fmt.Sprintf("╭%s╮\n│%s│%s│\n╰%s╯", border, labelPart, valuePart, border)
}
