// Package main provides the CLI entrypoint for wordle-verdict.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-verdict/internal/auth"
	"github.com/robalobadob/wordle-verdict/internal/config"
	"github.com/robalobadob/wordle-verdict/internal/verdict"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Word game server and guess evaluator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newEvalCmd(), newTokenCmd(), newHashKeyCmd())
	return root
}

// setupLogging configures the global zerolog logger from cfg.
func setupLogging(cfg *config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if strings.EqualFold(cfg.LogFormat, "console") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func newEvalCmd() *cobra.Command {
	var grid bool
	cmd := &cobra.Command{
		Use:   "eval ANSWER GUESS",
		Short: "Score a guess against an answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := verdict.Evaluate(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if grid {
				_, err = fmt.Fprintln(out, res.String())
				return err
			}
			tags := make([]string, len(res))
			for i, v := range res {
				tags[i] = string(v)
			}
			_, err = fmt.Fprintln(out, strings.Join(tags, " "))
			return err
		},
	}
	cmd.Flags().BoolVar(&grid, "grid", false, "print a share-grid row instead of tags")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var player, name string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a player token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			tok, exp, err := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL()).Sign(auth.Player{ID: player, Name: name})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "player ID (token subject)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

func newHashKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-key KEY",
		Short: "Print the bcrypt hash of an admin key for ADMIN_KEY_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := auth.HashKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
}
