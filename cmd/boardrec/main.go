package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rushteam/boardrec/config"
	"github.com/rushteam/boardrec/core"
	"github.com/rushteam/boardrec/feature"
	"github.com/rushteam/boardrec/filter"
	"github.com/rushteam/boardrec/service"
	"github.com/rushteam/boardrec/store"
)

type app struct {
	cfg     *config.Config
	store   core.Store
	service *service.Service
	logger  *slog.Logger
}

var (
	configPath string
	seedPath   string
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "boardrec",
		Short:         "Board game similarity recommender",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "config file (yaml)")
	root.PersistentFlags().StringVar(&seedPath, "seed", "", "import records from this file before running the command")

	root.AddCommand(importCmd(), searchCmd(), weightedSearchCmd())
	return root
}

func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	s, err := store.NewStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	catalog := store.NewStoreCatalog(s, cfg.Store.KeyPrefix)
	cache := feature.NewVectorCache(feature.WithRefreshConcurrency(cfg.Recommend.RefreshConcurrency))
	svc := service.New(catalog, cache,
		service.WithTopK(cfg.Recommend.TopK),
		service.WithLogger(logger),
	)

	a := &app{cfg: cfg, store: s, service: svc, logger: logger}
	if seedPath != "" {
		if _, err := a.importFile(ctx, seedPath); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return a, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("close store", "store", a.store.Name(), "error", err)
	}
}

func (a *app) importFile(ctx context.Context, path string) (int, error) {
	records, err := loadRecords(path)
	if err != nil {
		return 0, err
	}
	saved, err := a.service.SaveGames(ctx, records)
	if err != nil {
		return len(saved), err
	}
	a.logger.Info("games imported", "file", path, "count", len(saved))
	return len(saved), nil
}

// loadRecords 读取导入记录列表，支持 YAML 与 JSON。
func loadRecords(path string) ([]service.GameRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var records []service.GameRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	return records, nil
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import game records into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := setup(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			n, err := a.importFile(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d games\n", n)
			return nil
		},
	}
}

func searchCmd() *cobra.Command {
	var (
		expr    string
		exclude []string
	)
	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Find games similar to the named game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := setup(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.service.RefreshCache(ctx); err != nil {
				return err
			}
			var filters []filter.Filter
			if len(exclude) > 0 {
				f, err := a.service.ExcludeByName(ctx, exclude...)
				if err != nil {
					return err
				}
				filters = append(filters, f)
			}
			if expr != "" {
				f, err := filter.NewExprFilter(expr)
				if err != nil {
					return err
				}
				filters = append(filters, f)
			}

			var recs []core.Recommendation
			if len(filters) > 0 {
				recs, err = a.service.SearchWithFilters(ctx, args[0], filters...)
			} else {
				recs, err = a.service.SearchDetailed(ctx, args[0])
			}
			if err != nil {
				return err
			}
			printRecommendations(cmd, recs)
			return nil
		},
	}
	cmd.Flags().StringVar(&expr, "filter", "", `CEL filter over candidates, e.g. "game.max_players >= 4"`)
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "game names to leave out of the results")
	return cmd
}

func weightedSearchCmd() *cobra.Command {
	var weights []string
	cmd := &cobra.Command{
		Use:   "wsearch <name>",
		Short: "Find similar games with emphasized dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := make([]core.WeightOption, 0, len(weights))
			for _, w := range weights {
				opt, err := core.ParseWeightOption(w)
				if err != nil {
					return err
				}
				opts = append(opts, opt)
			}

			ctx := cmd.Context()
			a, err := setup(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			recs, err := a.service.WeightedSearchDetailed(ctx, args[0], core.NewWeightSet(opts...))
			if err != nil {
				return err
			}
			printRecommendations(cmd, recs)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&weights, "weight", "w", nil,
		"weight options: "+strings.Join(weightOptionNames(), ", "))
	return cmd
}

func weightOptionNames() []string {
	all := core.AllWeightOptions()
	out := make([]string, 0, len(all))
	for _, o := range all {
		out = append(out, o.String())
	}
	return out
}

func printRecommendations(cmd *cobra.Command, recs []core.Recommendation) {
	out := cmd.OutOrStdout()
	for i, r := range recs {
		fmt.Fprintf(out, "%d. %s\t%.4f\n", i+1, r.Name, r.Score)
	}
}
