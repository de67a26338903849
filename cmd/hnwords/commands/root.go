// Package commands implements the CLI commands for the hnwords tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mypham14/hacker-news-pipeline/internal/analysis"
	"github.com/mypham14/hacker-news-pipeline/internal/config"
	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline"
	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/drawer"
	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/measure"
	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/model"
)

// CLI represents the command line interface for hnwords.
type CLI struct {
	rootCmd *cobra.Command
	logger  *slog.Logger
}

// New creates a new CLI instance.
func New() *CLI {
	cli := &CLI{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}

	rootCmd := &cobra.Command{
		Use:           "hnwords",
		Short:         "Rank the most frequent keywords in popular Hacker News stories",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cli.run,
	}

	rootCmd.Flags().StringP("config", "c", config.DefaultFileName, "path to configuration file")
	rootCmd.Flags().StringP("input", "i", "", "path to the JSON dump of stories")
	rootCmd.Flags().IntP("top", "n", 0, "number of keywords to report")
	rootCmd.Flags().StringP("graph", "g", "", "write the task graph to this DOT file")

	cli.rootCmd = rootCmd

	return cli
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)

	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the output writer of the root command. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func (c *CLI) run(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := analysis.Options{
		InputPath: cfg.Input,
		Popularity: analysis.Popularity{
			MinPoints:     cfg.MinPoints,
			MinComments:   cfg.MinComments,
			ExcludePrefix: cfg.ExcludePrefix,
		},
		StopWords: analysis.DefaultStopWords().With(cfg.StopWords...),
		TopN:      cfg.Top,
	}

	var pipeOpts []model.PipelineOption
	if cfg.Graph != "" {
		msr := measure.NewDefaultMeasure()
		pipeOpts = append(pipeOpts,
			measure.PipelineMeasure(msr),
			drawer.PipelineDrawer(drawer.NewSVGDrawer(cfg.Graph), msr),
		)
	}

	pipe, ranked, err := analysis.BuildPipeline(opts, pipeOpts...)
	if err != nil {
		return err
	}

	c.logger.Info("running analysis", "input", cfg.Input, "top", cfg.Top)

	start := time.Now()
	results, err := pipe.Run(cmd.Context())
	if err != nil {
		return err
	}

	keywords, err := pipeline.Value(results, ranked)
	if err != nil {
		return err
	}

	c.logger.Info("analysis finished",
		"tasks", results.Len(),
		"keywords", len(keywords),
		"elapsed", time.Since(start),
	)

	out := cmd.OutOrStdout()
	for _, keyword := range keywords {
		_, err := fmt.Fprintf(out, "%s,%d\n", keyword.Word, keyword.Count)
		if err != nil {
			return err
		}
	}

	if cfg.Graph != "" {
		c.logger.Info("task graph written", "path", cfg.Graph)
	}

	return nil
}

// loadConfig reads the config file and applies flag overrides. The default
// config file is optional; one named with --config must exist.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if _, statErr := os.Stat(path); statErr == nil || cmd.Flags().Changed("config") {
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}

	if cmd.Flags().Changed("input") {
		cfg.Input, _ = cmd.Flags().GetString("input")
	}
	if cmd.Flags().Changed("top") {
		cfg.Top, _ = cmd.Flags().GetInt("top")
	}
	if cmd.Flags().Changed("graph") {
		cfg.Graph, _ = cmd.Flags().GetString("graph")
	}

	return cfg, cfg.Validate()
}
