package main

import (
	"context"
	"fmt"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/pkg/adapters/loam"
	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Parse every document of a directory",
	Long: `Reads every Markdown document (frontmatter plus markup body) under --dir,
parses it and prints one row per document. With --watch, documents are parsed
again whenever they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		watch, _ := cmd.Flags().GetBool("watch")

		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		source, err := loam.Open(dir)
		if err != nil {
			return err
		}

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		results, err := cli.ParseCorpus(sigCtx, rt, source)
		if err != nil {
			return err
		}
		if err := cli.WriteCorpusTable(cmd.OutOrStdout(), results); err != nil {
			return err
		}

		if watch {
			return cli.WatchCorpus(sigCtx, rt, source, cmd.OutOrStdout())
		}
		if n := cli.FailedCount(results); n > 0 {
			return fmt.Errorf("%d of %d documents failed", n, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(corpusCmd)

	corpusCmd.Flags().String("dir", ".", "Directory containing the corpus")
	corpusCmd.Flags().Bool("watch", false, "Re-parse documents when they change")
	addParserFlags(corpusCmd)
}
