package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/amnplus-client/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	deadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	tableBorders = lipgloss.NewStyle().Faint(true)
)

const maskedSecret = "••••••••"

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorders).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func formatTime(ts models.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format(time.DateTime)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func renderStatus(status models.APIKeyStatus) string {
	switch status {
	case models.APIKeyStatusActive:
		return activeStyle.Render(string(status))
	case models.APIKeyStatusInactive:
		return deadStyle.Render(string(status))
	default:
		return helpStyle.Render(string(models.APIKeyStatusUnknown))
	}
}

// printListNotes reports the parts of a listing that need the user's
// attention: a stale offline view and items that could not be decrypted.
func printListNotes(w io.Writer, stale bool, failed []models.ItemError) {
	if stale {
		fmt.Fprintln(w, warnStyle.Render("vault unreachable, showing cached items"))
	}
	for _, f := range failed {
		fmt.Fprintln(w, warnStyle.Render("warning:"), fmt.Sprintf("could not decrypt %q (%s): %v", f.Title, f.ID, f.Err))
	}
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(fmt.Sprintf("%-12s", label+":")), value)
}
