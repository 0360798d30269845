package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lexorigin/internal/adapter/ollama"
	"lexorigin/internal/di"
	"lexorigin/internal/infra"
	"lexorigin/internal/infra/config"
	"lexorigin/internal/infra/logger"
	"lexorigin/internal/usecase"
)

var (
	version = "dev"

	dataDir    string
	embedRate  float64
	lawsFile   string
	debateFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "ingest",
	Short:   "Load scraper output into the LexOrigin document store",
	Version: version,
}

var lawsCmd = &cobra.Command{
	Use:   "laws",
	Short: "Ingest immigration law sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		ing, cleanup, err := buildIngest()
		if err != nil {
			return err
		}
		defer cleanup()

		count, err := ing.IngestLawsFile(cmd.Context(), lawsPath())
		if err != nil {
			return err
		}
		color.Green("Ingested %d law sections into 'legal_texts'", count)
		return nil
	},
}

var debatesCmd = &cobra.Command{
	Use:   "debates",
	Short: "Ingest Hansard debate excerpts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ing, cleanup, err := buildIngest()
		if err != nil {
			return err
		}
		defer cleanup()

		count, err := ing.IngestDebatesFile(cmd.Context(), debatesPath())
		if err != nil {
			return err
		}
		color.Green("Ingested %d debates into 'hansard_debates'", count)
		return nil
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Ingest laws and debates",
	RunE: func(cmd *cobra.Command, args []string) error {
		ing, cleanup, err := buildIngest()
		if err != nil {
			return err
		}
		defer cleanup()

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			count, err := ing.IngestLawsFile(ctx, lawsPath())
			if err != nil {
				return fmt.Errorf("laws: %w", err)
			}
			color.Green("Ingested %d law sections into 'legal_texts'", count)
			return nil
		})
		g.Go(func() error {
			count, err := ing.IngestDebatesFile(ctx, debatesPath())
			if err != nil {
				return fmt.Errorf("debates: %w", err)
			}
			color.Green("Ingested %d debates into 'hansard_debates'", count)
			return nil
		})
		return g.Wait()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the scraper output (defaults to DATA_DIR)")
	rootCmd.PersistentFlags().Float64Var(&embedRate, "embed-rate", 2, "max embedding calls per second")
	lawsCmd.Flags().StringVar(&lawsFile, "file", "", "laws JSON file (overrides data dir)")
	debatesCmd.Flags().StringVar(&debateFile, "file", "", "debates JSON file (overrides data dir)")

	rootCmd.AddCommand(lawsCmd, debatesCmd, allCmd)
}

func buildIngest() (usecase.IngestUsecase, func(), error) {
	cfg := config.Load()
	if dataDir == "" {
		dataDir = cfg.DataDir
	}

	log := logger.New()
	slog.SetDefault(log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	pool, err := infra.NewPostgresDB(context.Background(), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	embedder := ollama.NewThrottledEncoder(
		ollama.NewEmbedder(cfg.OllamaURL, cfg.EmbeddingModel, cfg.OllamaTimeout),
		embedRate,
	)
	components := di.NewComponents(cfg, pool, embedder)

	return components.Ingest, pool.Close, nil
}

func lawsPath() string {
	if lawsFile != "" {
		return lawsFile
	}
	return filepath.Join(dataDir, "immigration_laws.json")
}

func debatesPath() string {
	if debateFile != "" {
		return debateFile
	}
	return filepath.Join(dataDir, "hansard_debates.json")
}
