package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dothrak/Portfolio-2.0/internal/config"
	"github.com/dothrak/Portfolio-2.0/internal/server"
	"github.com/dothrak/Portfolio-2.0/internal/site"
)

// NewServeCmd creates the serve command.
func NewServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the portfolio locally and rebuilds it on changes",
		Long: `The serve command performs an initial build, then starts a local web
server. The page is rendered per request in the theme the browser prefers,
and the content and static directories are watched so the site is rebuilt
whenever they change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().IntP("port", "p", config.DefaultPort, "Port to serve the site on")
	cmd.Flags().String("content", config.DefaultContentDir, "Content directory")
	cmd.Flags().String("static", config.DefaultStaticDir, "Static assets directory")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	logger := a.logger

	logger.Info("performing initial build")
	s, err := site.New(a.cfg, logger)
	if err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}
	if _, err := s.Build(ctx); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	handler := server.NewHandler(s, a.cfg.OutputDir, logger.Named("http"))

	rebuild := func(ctx context.Context) error {
		next, err := site.New(a.cfg, logger)
		if err != nil {
			return err
		}
		if _, err := next.Build(ctx); err != nil {
			return err
		}
		handler.SetSite(next)
		return nil
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", a.cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", a.cfg.Port, err)
	}

	watcher, err := server.NewWatcher(
		[]string{a.cfg.ContentDir, a.cfg.StaticDir},
		server.DefaultDebounce,
		rebuild,
		logger.Named("watch"),
	)
	if err != nil {
		ln.Close()
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	logger.Info("press Ctrl+C to stop the server", zap.String("outputDir", a.cfg.OutputDir))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(ctx, ln, handler.Routes(), logger.Named("http"))
	})
	g.Go(func() error {
		return watcher.Run(ctx)
	})
	return g.Wait()
}
