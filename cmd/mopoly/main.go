package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mopoly/internal/api"
	"mopoly/internal/board"
	"mopoly/internal/config"
	"mopoly/internal/game"
	"mopoly/internal/results"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "mopoly",
		Short:        "Deterministic board economy simulator",
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newBoardCmd(),
		newResultsCmd(),
		newServeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	cfg := config.LoadSimFromEnv()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one or more matches to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg.Verbose)

			b, err := loadBoard(cfg.BoardPath)
			if err != nil {
				return err
			}

			seed := cfg.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			var store *results.Store
			runID := uuid.NewString()
			if cfg.DBPath != "" {
				store, err = results.Open(cfg.DBPath)
				if err != nil {
					return err
				}
				defer store.Close()
				err = store.CreateRun(cmd.Context(), results.Run{
					ID:              runID,
					Seed:            seed,
					Players:         cfg.Players,
					StartingBalance: cfg.StartingBalance,
					Games:           cfg.Games,
				})
				if err != nil {
					return err
				}
			}

			wins := make(map[int]int)
			for i := 0; i < cfg.Games; i++ {
				g, err := game.New(game.Config{
					Players:         cfg.Players,
					StartingBalance: cfg.StartingBalance,
					Seed:            seed + int64(i),
					Board:           b,
					Logger:          logger,
				})
				if err != nil {
					return err
				}
				res := g.Run()
				wins[res.Winner]++

				if cfg.Games > 1 {
					accent.Printf("Game %d/%d (seed %d)\n", i+1, cfg.Games, seed+int64(i))
				}
				renderResult(res)
				if store != nil {
					if err := store.SaveGame(cmd.Context(), runID, i+1, res); err != nil {
						return err
					}
				}
			}

			if cfg.Games > 1 {
				renderSummary(wins, cfg.Games, cfg.Players)
			}
			if store != nil {
				printInfo(fmt.Sprintf("Stored run %s (%d games) in %s", runID, cfg.Games, cfg.DBPath))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Players, "players", cfg.Players, "number of players")
	cmd.Flags().IntVar(&cfg.StartingBalance, "balance", cfg.StartingBalance, "starting balance per player")
	cmd.Flags().IntVar(&cfg.Games, "games", cfg.Games, "number of matches to simulate")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "base random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&cfg.BoardPath, "board", cfg.BoardPath, "board layout JSON (default: embedded US board)")
	cmd.Flags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite file to store standings in")
	cmd.Flags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every engine event")
	return cmd
}

func newBoardCmd() *cobra.Command {
	var boardPath string
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Validate and print a board layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(boardPath)
			if err != nil {
				return err
			}
			renderBoard(b)
			return nil
		},
	}
	cmd.Flags().StringVar(&boardPath, "board", "", "board layout JSON (default: embedded US board)")
	return cmd
}

func newResultsCmd() *cobra.Command {
	cfg := config.LoadSimFromEnv()
	cmd := &cobra.Command{
		Use:   "results [run-id]",
		Short: "List stored runs or show one run's standings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DBPath == "" {
				return fmt.Errorf("no results database: set --db or MOPOLY_DB")
			}
			store, err := results.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 0 {
				runs, err := store.ListRuns(cmd.Context())
				if err != nil {
					return err
				}
				renderRuns(runs)
				return nil
			}

			run, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			games, err := store.RunGames(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderStoredRun(run, games)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite results file")
	return cmd
}

func newServeCmd() *cobra.Command {
	var addr, dbPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stored results over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := config.LoadAPIFromEnv()
			if err != nil && dbPath == "" {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}

			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
			store, err := results.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			server := api.New(cfg, logger, store)
			httpServer := &http.Server{
				Addr:              cfg.Addr,
				Handler:           server.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				_ = httpServer.Shutdown(shutdownCtx)
			}()

			logger.Info("results api listening", "addr", cfg.Addr, "db", cfg.DBPath)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: MOPOLY_API_ADDR or :8080)")
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite results file (default: MOPOLY_DB)")
	return cmd
}

func loadBoard(path string) (*board.Board, error) {
	if path == "" {
		return board.Default(), nil
	}
	return board.Load(path)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
