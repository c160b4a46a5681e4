package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCredits(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-25000, "-25,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCredits(tt.in))
	}
	assert.Equal(t, "+1,500", formatAmount(1500))
	assert.Equal(t, "-80", formatAmount(-80))
}

func TestParseAmount(t *testing.T) {
	n, err := parseAmount([]string{"Water"}, 1, 99)
	require.NoError(t, err)
	assert.Equal(t, 99, n)

	n, err = parseAmount([]string{"Water", "ALL"}, 1, 99)
	require.NoError(t, err)
	assert.Equal(t, 99, n)

	n, err = parseAmount([]string{"Water", "12"}, 1, 99)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = parseAmount([]string{"Water", "-3"}, 1, 99)
	assert.Error(t, err)
	_, err = parseAmount([]string{"lots"}, 0, 0)
	assert.Error(t, err)
}

func TestMaskPassword(t *testing.T) {
	assert.Equal(t, "postgres://trader:xxxxx@db:5432/spacetrader", maskPassword("postgres://trader:secret@db:5432/spacetrader"))
	assert.Equal(t, "postgres://db:5432/spacetrader", maskPassword("postgres://db:5432/spacetrader"))
	assert.Equal(t, "spacetrader.db", maskPassword("spacetrader.db"))
}

func TestRenderTable_ListsEveryRow(t *testing.T) {
	out := renderTable([]string{"System", "Dist"}, [][]string{{"Sol", "0"}, {"Regulas", "12"}}, func(row int) bool {
		return row == 0
	})

	assert.Contains(t, out, "System")
	assert.Contains(t, out, "Regulas")
	assert.Equal(t, 1, strings.Count(out, "Sol"))
}

func TestNewRootCommand_RegistersEveryCommand(t *testing.T) {
	root := NewRootCommand()

	for _, name := range []string{
		"config", "new", "games", "delete", "status", "retire", "galaxy", "warp", "fight",
		"market", "history", "trades", "buy", "sell", "dump", "jettison", "fuel", "repair",
		"bank", "insurance", "crew", "ledger", "simulate",
	} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
