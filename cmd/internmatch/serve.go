package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/internship-matcher/internal/server"
	"github.com/jonathan/internship-matcher/internal/server/ratelimit"
)

var (
	servePort    int
	serveSources sourceFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes scoring, recommendation, explanation and feedback endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT or the config file)")
	addSourceFlags(serveCmd.Flags(), &serveSources)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd.Context(), serveSources)
	if err != nil {
		return err
	}
	defer rt.close()

	port := rt.cfg.Port
	if servePort > 0 {
		port = servePort
	}

	srv := server.New(server.Config{
		Port:        port,
		RankOptions: rt.cfg.RankOptions(),
		RateLimit:   ratelimit.LoadConfig(),
	}, rt.engine, rt.logger)

	return srv.Start()
}
