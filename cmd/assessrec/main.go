// Copyright 2026 TalentSift
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	assessrec "github.com/talentsift/assessrec"
	"github.com/talentsift/assessrec/ai"
	"github.com/talentsift/assessrec/ai/openai"
	"github.com/talentsift/assessrec/indexer"
	"github.com/talentsift/assessrec/retrieval"
	"github.com/talentsift/assessrec/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "assessrec",
		Usage: "Assessment recommendation engine for hiring queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Embed a scraped catalog file and build the searchable index",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Usage:    "Path to the catalog JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent embedding workers",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of items per embedding request",
						Value: 16,
					},
				},
			},
			{
				Name:      "recommend",
				Usage:     "Recommend assessments for a hiring query or job posting URL",
				Action:    recommendCommand,
				ArgsUsage: "<query or URL>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "chat-host",
						Usage: "Chat service host URL (defaults to embedding-host)",
					},
					&cli.StringFlag{
						Name:  "chat-model",
						Usage: "Chat model name for intent extraction and reranking",
						Value: "qwen2.5:3b",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of recommendations to return",
						Value:   10,
					},
					&cli.Float64Flag{
						Name:  "alpha",
						Usage: "Lexical weight of the hybrid retrieval blend",
						Value: retrieval.DefaultAlpha,
					},
					&cli.BoolFlag{
						Name:  "rerank",
						Usage: "Enable LLM reranking of retrieval results",
					},
					&cli.BoolFlag{
						Name:  "heuristic-intent",
						Usage: "Skip LLM intent extraction and use the heuristic extractor",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	items, err := indexer.LoadCatalogJSON(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create catalog repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	opts := []indexer.Option{indexer.WithBatchSize(c.Int("batch-size"))}
	if c.Int("pool-size") > 0 {
		opts = append(opts, indexer.WithPoolSize(c.Int("pool-size")))
	}

	pipeline, err := indexer.NewPipeline(repo, provider.Embedder(), opts...)
	if err != nil {
		return fmt.Errorf("failed to create indexing pipeline: %w", err)
	}
	defer pipeline.Release()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Catalog entries: %d\n", len(items))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := pipeline.Index(ctx, items); err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %d items\n", len(items))
	return nil
}

func recommendCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query or job posting URL is required")
	}

	chatHost := c.String("chat-host")
	if chatHost == "" {
		chatHost = c.String("embedding-host")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatHost(chatHost),
		ai.WithChatModel(c.String("chat-model")),
	)

	opts := []assessrec.RecommenderOption{
		assessrec.WithAIConfig(aiConfig),
		assessrec.WithAlpha(c.Float64("alpha")),
		assessrec.WithReranking(c.Bool("rerank")),
	}
	if c.Bool("heuristic-intent") {
		opts = append(opts, assessrec.WithHeuristicIntentOnly())
	}

	recommender, err := assessrec.NewRecommender(c.String("db"), opts...)
	if err != nil {
		return fmt.Errorf("failed to open recommender: %w", err)
	}
	defer recommender.Close()

	recs, err := recommender.Recommend(ctx, query, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{"recommended_assessments": recs})
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
