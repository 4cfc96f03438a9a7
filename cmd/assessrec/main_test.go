package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
			app := &cli.App{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "log-level", Value: level},
				},
				Before: setupLogger,
				Action: func(c *cli.Context) error { return nil },
			}
			err := app.Run([]string{"assessrec"})
			assert.NoError(t, err, "level %s", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "verbose"},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
		err := app.Run([]string{"assessrec"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestRecommendCommandRequiresQuery(t *testing.T) {
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "recommend",
				Action: recommendCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Required: true},
					&cli.StringFlag{Name: "embedding-host", Value: "http://localhost:11434/v1"},
					&cli.StringFlag{Name: "embedding-model", Required: true},
					&cli.StringFlag{Name: "chat-host"},
					&cli.StringFlag{Name: "chat-model", Value: "qwen2.5:3b"},
					&cli.IntFlag{Name: "top-k", Value: 10},
					&cli.Float64Flag{Name: "alpha", Value: 0.39},
					&cli.BoolFlag{Name: "rerank"},
					&cli.BoolFlag{Name: "heuristic-intent"},
				},
			},
		},
	}

	err := app.Run([]string{"assessrec", "recommend",
		"--db", os.TempDir(), "--embedding-model", "embeddinggemma"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
}
