package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viant/mcp-protocol/schema"
	mcpsrv "github.com/viant/mcp/server"

	dmcp "github.com/doclens/doclens/mcp"
)

func serveCmd(args []string) {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := flags.String("config", "", "config yaml (optional, defaults to ~/doclens/config.yaml if present)")
	mcpAddr := flags.String("mcp-addr", "127.0.0.1:6071", "MCP server address")
	analyzerURL := flags.String("analyzer-url", "", "OpenAI-compatible base URL (optional)")
	analyzerModel := flags.String("analyzer-model", "", "analyzer model name (optional)")
	analyzerKey := flags.String("analyzer-key", "", "analyzer API key (optional, defaults to OPENAI_API_KEY)")
	flags.Parse(args)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := loadConfig(*configPath)
	svc := buildService(cfg, buildOptions{
		analyzerURL:   *analyzerURL,
		analyzerModel: *analyzerModel,
		analyzerKey:   *analyzerKey,
	})

	server, err := mcpsrv.New(
		mcpsrv.WithImplementation(schema.Implementation{Name: "doclens-mcp", Version: "0.1.0"}),
		mcpsrv.WithNewHandler(dmcp.NewHandler(svc)),
		mcpsrv.WithEndpointAddress(*mcpAddr),
		mcpsrv.WithRootRedirect(true),
		mcpsrv.WithStreamableURI("/mcp"),
	)
	if err != nil {
		log.Fatal(err)
	}

	server.UseStreamableHTTP(true)
	httpServer := server.HTTP(ctx, *mcpAddr)
	httpServer.ReadHeaderTimeout = 10 * time.Second
	httpServer.ReadTimeout = 60 * time.Second
	httpServer.WriteTimeout = 60 * time.Second
	httpServer.IdleTimeout = 120 * time.Second

	log.Printf("doclens-mcp listening on %s", httpServer.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	cancel()
	log.Printf("shutdown signal received: %v", sig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Printf("doclens-mcp stopped")
}
