package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/samudra/internal/annotate"
	"github.com/vk/samudra/internal/config"
	"github.com/vk/samudra/internal/ctxlog"
	"github.com/vk/samudra/internal/lexicon"
	"github.com/vk/samudra/internal/metrics"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	parser  *annotate.Parser
	builder *lexicon.Builder
	metrics *metrics.Metrics

	httpServer *http.Server
}

// NewApp is the constructor for the main application. Results are written
// to outW and logs to logW. The configuration, if any, is loaded through
// loader and turns into the parser's allow-list and the word class registry.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := &config.Model{}
	if appConfig.ConfigPath != "" {
		loaded, err := loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		model = loaded
	}
	logger.Debug("Configuration loaded.", "namespaces", len(model.Namespaces), "word_classes", len(model.WordClasses))

	schema, err := schemaFromModel(ctx, model)
	if err != nil {
		return nil, err
	}
	registry, err := registryFromModel(ctx, model)
	if err != nil {
		return nil, err
	}

	parser := annotate.NewParser(annotate.WithSchema(schema), annotate.WithStrict(appConfig.Strict))
	logger.Debug("Parser ready.", "namespaces", schema.Names(), "strict", appConfig.Strict, "word_classes", registry.IDs())

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		parser:  parser,
		builder: lexicon.NewBuilder(parser, registry),
		metrics: metrics.New(),
	}, nil
}

// Parser returns the application's parser. This is primarily for testing.
func (a *App) Parser() *annotate.Parser {
	return a.parser
}

// Metrics returns the application's collectors.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}
