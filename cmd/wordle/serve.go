package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-verdict/internal/auth"
	"github.com/robalobadob/wordle-verdict/internal/config"
	"github.com/robalobadob/wordle-verdict/internal/daily"
	"github.com/robalobadob/wordle-verdict/internal/db"
	"github.com/robalobadob/wordle-verdict/internal/httpserver"
	"github.com/robalobadob/wordle-verdict/internal/store"
	"github.com/robalobadob/wordle-verdict/internal/words"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			setupLogging(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	answers, allowed := list.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	conn, err := db.OpenAndMigrate(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	admin := auth.NewAdminKey(cfg.AdminKeyHash)
	if !admin.Enabled() {
		log.Info().Msg("ADMIN_KEY_HASH not set; /admin routes disabled")
	}

	srv := httpserver.New(httpserver.Deps{
		Games:          store.NewMemoryStore(),
		History:        store.NewHistory(conn),
		Daily:          daily.NewStore(conn),
		Words:          list,
		Issuer:         auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL()),
		Admin:          admin,
		CookieName:     cfg.CookieName,
		SecureCookies:  cfg.Production(),
		DailySalt:      cfg.DailySalt,
		Rows:           cfg.GameRows,
		RequestTimeout: cfg.RequestTimeout,
		GameTTL:        cfg.GameTTL,
	})
	log.Info().Str("env", cfg.AppEnv).Str("port", cfg.Port).Msg("starting server")
	return srv.Run(ctx, cfg.Addr(), cfg.ShutdownTimeout)
}
