package main

import (
	"path/filepath"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/input"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Summarize the tree of a document",
	Long:  `Prints node counts, nesting depth and a tag histogram for the parsed markup.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		path, title := "", "stdin"
		if len(args) > 0 && args[0] != "-" {
			path, title = args[0], filepath.Base(args[0])
		}
		markup, err := cli.ReadMarkup(path, cmd.InOrStdin(), input.MaxSize(rt.Config.Server.MaxInputSize))
		if err != nil {
			return err
		}

		return cli.RunInspect(cmd.Context(), rt, title, markup, cmd.OutOrStdout(), !raw)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Bool("raw", false, "Print the report as plain markdown")
	addParserFlags(inspectCmd)
}
