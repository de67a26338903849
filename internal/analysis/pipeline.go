package analysis

import (
	"context"

	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline"
	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/model"
)

// Options configures the analysis pipeline.
type Options struct {
	// InputPath is the JSON dump to analyse.
	InputPath string
	// Popularity holds the story filtering thresholds.
	Popularity Popularity
	// StopWords are excluded from the keyword ranking.
	StopWords StopWords
	// TopN caps the ranking length.
	TopN int
}

// DefaultOptions returns the analysis defaults: the original popularity
// thresholds, the standard stop word set and a top 100 ranking.
func DefaultOptions(inputPath string) Options {
	return Options{
		InputPath:  inputPath,
		Popularity: DefaultPopularity(),
		StopWords:  DefaultStopWords(),
		TopN:       100,
	}
}

// BuildPipeline registers the analysis steps against a new pipeline and
// returns it together with the handle of the final ranking task.
func BuildPipeline(opts Options, pipeOpts ...model.PipelineOption) (*pipeline.Pipeline, *pipeline.Task[[]WordCount], error) {
	pipe, err := pipeline.New(pipeOpts...)
	if err != nil {
		return nil, nil, err
	}

	loaded, err := pipeline.AddRootTask(pipe, "load stories", func(ctx context.Context) ([]Story, error) {
		return LoadStories(opts.InputPath)
	})
	if err != nil {
		return nil, nil, err
	}

	filtered, err := pipeline.AddTask(pipe, "filter popular", loaded, func(ctx context.Context, stories []Story) ([]Story, error) {
		return FilterPopular(stories, opts.Popularity), nil
	})
	if err != nil {
		return nil, nil, err
	}

	table, err := pipeline.AddTask(pipe, "write table", filtered, func(ctx context.Context, stories []Story) ([]byte, error) {
		return WriteTable(stories)
	})
	if err != nil {
		return nil, nil, err
	}

	titles, err := pipeline.AddTask(pipe, "extract titles", table, func(ctx context.Context, table []byte) ([]string, error) {
		return TitleColumn(table)
	})
	if err != nil {
		return nil, nil, err
	}

	cleaned, err := pipeline.AddTask(pipe, "clean titles", titles, func(ctx context.Context, titles []string) ([]string, error) {
		return CleanTitles(titles), nil
	})
	if err != nil {
		return nil, nil, err
	}

	counted, err := pipeline.AddTask(pipe, "count words", cleaned, func(ctx context.Context, titles []string) ([]WordCount, error) {
		return CountWords(titles, opts.StopWords), nil
	})
	if err != nil {
		return nil, nil, err
	}

	ranked, err := pipeline.AddTask(pipe, "rank keywords", counted, func(ctx context.Context, counts []WordCount) ([]WordCount, error) {
		return TopN(counts, opts.TopN), nil
	})
	if err != nil {
		return nil, nil, err
	}

	return pipe, ranked, nil
}
