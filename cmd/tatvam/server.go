package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/ckkulkarni/tatvam/internal/api"
	"github.com/ckkulkarni/tatvam/internal/config"
	"github.com/ckkulkarni/tatvam/internal/knowledge"
	"github.com/ckkulkarni/tatvam/internal/lookup"
	"github.com/ckkulkarni/tatvam/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tatvam server (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running tatvam server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stopServer()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show tatvam system status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus()
	},
}

func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, "tatvam.pid")
}

func writePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func removePIDFile(path string) {
	os.Remove(path)
}

// buildResponder loads the knowledge base and wires up the responder the way
// the config asks for. Shared by serve and the local chat REPL.
func buildResponder(ctx context.Context, cfg config.Config) (*knowledge.Base, *router.Responder, func(), error) {
	base, err := knowledge.Load(ctx, knowledge.Sources{
		Profile:   cfg.Knowledge.ProfilePath,
		Smalltalk: cfg.Knowledge.SmalltalkPath,
		Jokes:     cfg.Knowledge.JokesPath,
		Memes:     cfg.Knowledge.MemesPath,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading knowledge: %w", err)
	}

	if cfg.Knowledge.ResumePath != "" {
		if err := base.AttachResume(cfg.Knowledge.ResumePath); err != nil {
			slog.Warn("resume not attached", "path", cfg.Knowledge.ResumePath, "error", err)
		}
	}

	cleanup := func() {}
	var web router.Lookup
	if cfg.Lookup.Enabled {
		cache, err := lookup.OpenCache(cfg.Storage.DataDir, time.Duration(cfg.Lookup.CacheTTLHours)*time.Hour)
		if err != nil {
			slog.Warn("lookup cache unavailable, continuing without it", "error", err)
			web = lookup.NewClient(lookup.WithTimeout(time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second))
		} else {
			cleanup = func() { cache.Close() }
			web = lookup.NewClient(
				lookup.WithCache(cache),
				lookup.WithTimeout(time.Duration(cfg.Lookup.TimeoutSeconds)*time.Second),
			)
		}
	}

	responder := router.New(base, router.Options{
		TopicThreshold:     cfg.Responder.TopicThreshold,
		SmalltalkThreshold: cfg.Responder.SmalltalkThreshold,
		ProjectLimit:       cfg.Responder.ProjectLimit,
		Lookup:             web,
	})
	return base, responder, cleanup, nil
}

func runServer() error {
	fmt.Fprintf(os.Stderr, "tatvam version %s\n", version)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize structured logging.
	logLevel := slog.LevelInfo
	if strings.EqualFold(cfg.Log.Level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// Refuse to start twice. The health endpoint is the source of truth.
	pidPath := pidFilePath(cfg.Storage.DataDir)
	healthURL := fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Server.Port)
	healthClient := &http.Client{Timeout: 2 * time.Second}
	if resp, err := healthClient.Get(healthURL); err == nil {
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			return fmt.Errorf("tatvam is already running on port %d", cfg.Server.Port)
		}
	}
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer removePIDFile(pidPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	base, responder, cleanup, err := buildResponder(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	slog.Info("knowledge loaded",
		"intents", len(base.Intents),
		"jokes", len(base.Jokes),
		"memes", len(base.Memes),
		"projects", len(base.Profile.Projects),
	)

	handler := api.NewHandler(api.Deps{
		Base:      base,
		Responder: responder,
		Token:     cfg.Server.APIToken,
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// MCP server on stdio, in a goroutine.
	mcpSrv := api.NewMCPServer(api.MCPDeps{Base: base, Responder: responder})
	stdioSrv := server.NewStdioServer(mcpSrv)
	go func() {
		if err := stdioSrv.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("MCP stdio server error", "error", err)
		}
	}()
	slog.Info("MCP server started (stdio transport)")

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "tatvam listening on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "shutting down...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func stopServer() error {
	cfg, err := config.Load()
	if err != nil {
		printError("could not load config: %v", err)
		return err
	}

	pidPath := pidFilePath(cfg.Storage.DataDir)
	pid, err := readPIDFile(pidPath)
	if err != nil {
		printError("tatvam is not running (no PID file)")
		return fmt.Errorf("not running: %w", err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		printError("could not find process %d", pid)
		return err
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		printError("could not stop tatvam (PID %d): %v", pid, err)
		removePIDFile(pidPath)
		return err
	}

	printSuccess("Sent stop signal to tatvam (PID %d)", pid)
	return nil
}

func showStatus() error {
	cfg, err := config.Load()
	if err != nil {
		printError("config error: %v", err)
		return nil
	}

	serverURL := fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	client := &http.Client{Timeout: 2 * time.Second}

	running := false
	resp, err := client.Get(serverURL + "/health")
	if err != nil {
		printStatus("Server", "stopped")
	} else {
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			running = true
			printStatus("Server", "running on port %d", cfg.Server.Port)
		} else {
			printStatus("Server", "error (HTTP %d)", resp.StatusCode)
		}
	}

	if running {
		c, err := newAPIClient()
		if err == nil {
			var stats map[string]int
			if resp, err := c.get(context.Background(), "/knowledge/stats"); err == nil {
				if decodeJSON(resp, &stats) == nil {
					printStatus("Smalltalk intents", "%d", stats["smalltalk_intents"])
					printStatus("Jokes", "%d", stats["jokes"])
					printStatus("Memes", "%d", stats["memes"])
					printStatus("Projects", "%d", stats["projects"])
				}
			}
		}
	}

	printStatus("Profile dataset", "%s", cfg.Knowledge.ProfilePath)
	printStatus("Web lookup", "%v", cfg.Lookup.Enabled)
	printStatus("Data dir", "%s", cfg.Storage.DataDir)
	return nil
}
