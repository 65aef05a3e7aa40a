package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games built into this binary",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		games := registry.List()
		if len(games) == 0 {
			fmt.Fprintln(out, "No games registered.")
			return
		}

		idWidth := len("ID")
		for _, g := range games {
			idWidth = max(idWidth, len(g.ID))
		}
		idCol := lipgloss.NewStyle().Width(idWidth + 2)
		header := lipgloss.NewStyle().Bold(true)

		fmt.Fprintln(out, header.Render(idCol.Render("ID")+"Title"))
		for _, g := range games {
			fmt.Fprintln(out, idCol.Render(g.ID)+g.Title)
		}
		fmt.Fprintf(out, "\nStart one with '%s play <id>'.\n", cmd.Root().Name())
	},
}
