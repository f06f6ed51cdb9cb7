package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/kittygram-client/internal/palette"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Показать доступные цвета",
		Long:  "Выводит все цвета, которые принимает сервис. Значения подходят для флага --color.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printPalette(cmd.OutOrStdout())
			return nil
		},
	}
}

func printPalette(w io.Writer) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Цвет", "Hex", "")
	for _, e := range palette.Entries() {
		t.Row(e.Name, e.Hex, swatch(e.Hex, "  котик  "))
	}
	fmt.Fprintln(w, t.Render())
}

// swatch paints label on hex with a readable text colour.
func swatch(hex, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(palette.Foreground(hex))).
		Render(label)
}

// colorSwatch renders a record colour: a palette identifier or a raw hex.
func colorSwatch(value string) string {
	if palette.IsName(value) {
		return swatch(palette.NameToHex(value), value)
	}
	if value == "" {
		return "-"
	}
	return swatch(palette.NormalizeHex(value), value)
}
