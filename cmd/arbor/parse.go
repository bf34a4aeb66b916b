package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/input"
	"github.com/aretw0/arbor/internal/presentation/format"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse markup and print the tree",
	Long: `Parses markup from a file (or stdin when omitted or "-") and prints the
resulting tree as an indented dump, JSON, a Mermaid chart or HTML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawFormat, _ := cmd.Flags().GetString("format")
		f, err := format.Parse(rawFormat)
		if err != nil {
			return err
		}
		colorMode, _ := cmd.Flags().GetString("color")
		profile, err := cli.ColorProfile(colorMode, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		highlight, _ := cmd.Flags().GetString("highlight")

		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		markup, err := cli.ReadMarkup(path, cmd.InOrStdin(), input.MaxSize(rt.Config.Server.MaxInputSize))
		if err != nil {
			return err
		}

		return cli.RunParse(cmd.Context(), rt, markup, cmd.OutOrStdout(), cli.ParseOptions{
			Format:    f,
			Profile:   profile,
			Highlight: highlight,
		})
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("format", "f", string(format.Text), "Output format: text, json, mermaid or html")
	parseCmd.Flags().String("color", cli.ColorAuto, "Color the text dump: auto, always or never")
	parseCmd.Flags().String("highlight", "", "Highlight elements with this tag in mermaid output")
	addParserFlags(parseCmd)
}
