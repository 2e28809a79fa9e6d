package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/crystaldolphin/aquarium-mcp/internal/httpapi"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST API and streamable MCP over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	router, err := container.Router()
	if err != nil {
		return err
	}

	sc := appConfig.Server
	if serveHost != "" {
		sc.Host = serveHost
	}
	if servePort != 0 {
		sc.Port = servePort
	}
	srv := httpapi.NewServer(sc.Host, sc.Port, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })

	fmt.Printf("%s Aquarium MCP listening on %s (REST under %s, MCP at %s)\n", logo, srv.Addr(), httpapi.AquariumPrefix, httpapi.MCPPath)
	if sc.PublicURL != "" {
		fmt.Printf("   public URL: %s%s\n", sc.PublicURL, httpapi.MCPPath)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Server error", "error", err)
		return err
	}
	fmt.Println("\nShutdown complete.")
	return nil
}
