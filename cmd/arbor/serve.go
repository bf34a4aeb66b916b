package main

import (
	"context"
	"fmt"
	"net"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/adapters/loam"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the parser over HTTP: POST /parse, plus /health, /info, /openapi.yaml
and /metrics. With --dir, the corpus is exposed under /documents and /events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")

		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		if cmd.Flags().Changed("port") {
			rt.Config.Server.Port, _ = cmd.Flags().GetInt("port")
		}

		var source ports.DocumentSource
		if dir != "" {
			if source, err = loam.Open(dir); err != nil {
				return err
			}
		}

		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", rt.Config.Server.Port))
		if err != nil {
			return err
		}

		tui.PrintBanner(cmd.ErrOrStderr())
		fmt.Fprintf(cmd.ErrOrStderr(), "Starting Arbor Server on %s\n", ln.Addr())

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		if err := cli.Serve(sigCtx, rt, ln, cli.NewHTTPHandler(rt, source)); err != nil {
			return err
		}
		if sig := sigCtx.Signal(); sig != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Arbor Server stopped (%v)\n", sig)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on (overrides server.port)")
	serveCmd.Flags().String("dir", "", "Corpus directory to expose under /documents")
	addParserFlags(serveCmd)
}
