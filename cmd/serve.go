package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gallerysearch/internal/config"
	"gallerysearch/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Gallery Search web server.
The server exposes the search, smart album, label and media endpoints
as a JSON API under /api/v1.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (defaults to GALLERY_WEB_PORT or 8080)")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	port := mustGetInt(cmd, "port")
	if port == 0 {
		port = cfg.Web.Port
	}
	host := mustGetString(cmd, "host")

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	server := web.NewServer(st, port, host, cfg.Web.AllowedOrigins)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Starting Gallery Search on http://%s:%d\n", host, port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
