package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
	httpAdapter "github.com/flori950/Architecture-as-Code-Visualizer/internal/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the visualizer in server mode, exposing diagram generation as a
JSON API over HTTP. The API contract is served at /openapi.yaml and
browsable at /swagger; Prometheus metrics at /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetString("port")
		logger := loggerFor(cmd)

		pipeline := visualizer.New(visualizer.WithLogger(logger))
		handler, err := httpAdapter.NewHandler(pipeline, httpAdapter.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error initializing server: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:              net.JoinHostPort(host, port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting ArchViz Server on %s\n", srv.Addr)
			fmt.Printf("API docs at http://%s/swagger, metrics at http://%s/metrics\n", srv.Addr, srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// In-flight generations are short; a small deadline is enough.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("ArchViz Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("host", "H", "", "Host interface to bind to (default all interfaces)")
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
