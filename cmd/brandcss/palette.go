package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/brandcss"
	"github.com/yacobolo/brandcss/internal/brand"
)

var paletteCmd = &cobra.Command{
	Use:   "palette [hex...]",
	Short: "Print the tonal ramp of one or more colors",
	Long: `Print the seven-step ramp (darkest to lightest) of each hex color.
Without arguments the colors of the brand file are used.`,
	Example: `  brandcss palette "#2e8555" "#25c2a0"
  brandcss palette --brand brands/acme.yaml --format json`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPalette,
}

func init() {
	f := paletteCmd.Flags()
	f.String("brand", "brand.yaml", "Brand file used when no colors are given")
	f.String("format", "text", "Output format: text|json")
}

func runPalette(cmd *cobra.Command, args []string) error {
	format := getStringWithFallback("format", "palette.format", "text")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	hexes := args
	if len(hexes) == 0 {
		path := getStringWithFallback("brand", "palette.brand", "brand.yaml")
		b, err := brand.Load(path)
		if err != nil {
			return err
		}
		hexes = []string{b.Colors.Primary, b.Colors.Accent, b.Colors.Neutral}
	}

	palettes, err := brandcss.Palettes(hexes)
	if err != nil {
		return err
	}

	useColors := brandcss.ShouldUseColors(getBoolWithFallback("color", "color", false))
	return brandcss.WritePalettes(cmd.OutOrStdout(), palettes, format == "json", useColors)
}
