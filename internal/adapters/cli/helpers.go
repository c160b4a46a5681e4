package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/10igma/spacetrader-web/internal/infrastructure/config"
)

var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	red         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	title       = brightGreen.Bold(true)
)

// resolveGameID resolves the game from the --game flag or the user default.
// Returns error only if no game can be identified from any source.
func resolveGameID() (string, error) {
	if gameID != "" {
		return gameID, nil
	}

	userConfigHandler, err := config.NewUserConfigHandler()
	if err != nil {
		return "", fmt.Errorf("no game specified and failed to load user config: %w", err)
	}
	userCfg, err := userConfigHandler.Load()
	if err != nil {
		return "", fmt.Errorf("no game specified and failed to load user config: %w", err)
	}
	if userCfg.DefaultGame != "" {
		return userCfg.DefaultGame, nil
	}

	return "", fmt.Errorf("no game specified: use --game, or set a default with 'spacetrader config set-game'")
}

// renderTable draws rows under a bold header. Rows whose first cell is
// marked by highlight are drawn bright.
func renderTable(headers []string, rows [][]string, highlight func(row int) bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return title
			}
			if highlight != nil && highlight(row) {
				return brightGreen
			}
			return green
		})
	return t.Render()
}

// keyValues renders aligned label/value pairs
func keyValues(pairs ...[2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(dimGreen.Render(fmt.Sprintf("  %-*s ", width+1, p[0]+":")))
		b.WriteString(green.Render(p[1]))
		b.WriteString("\n")
	}
	return b.String()
}

func heading(s string) string {
	return title.Render(s)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// parseAmount reads an optional amount argument. A missing argument or
// "all" yields fallback.
func parseAmount(args []string, i, fallback int) (int, error) {
	if len(args) <= i || strings.EqualFold(args[i], "all") {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid amount: %s", args[i])
	}
	return n, nil
}
