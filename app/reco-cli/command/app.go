package command

import (
	"context"
	"errors"
	"fmt"
	"myGreenReco/business/recommendation"
	"myGreenReco/internal/repository/fixture"
	"myGreenReco/internal/repository/postgres"
	"myGreenReco/pkg/config"
	"myGreenReco/pkg/database"
	"myGreenReco/pkg/logger"
	"strings"
)

var (
	ErrMissingFixture = errors.New("missing fixture path")
	ErrUnknownSource  = errors.New("unknown recommendation source")
)

type App struct {
	Graph  *recommendation.InteractionGraph
	Engine *recommendation.Engine
}

func newApp() *App {
	graph := recommendation.NewInteractionGraph()
	return &App{
		Graph:  graph,
		Engine: recommendation.NewEngine(graph, recommendation.NewSimilarityCache(graph)),
	}
}

// loadApp builds a fresh graph and fills it from the configured source.
func loadApp(ctx context.Context, opts *options) (*App, error) {
	repo, closeSource, err := openSource(opts)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	app := newApp()
	if _, err := recommendation.NewIngestor(repo, app.Graph).Load(ctx); err != nil {
		return nil, err
	}

	return app, nil
}

func openSource(opts *options) (recommendation.InteractionRepository, func(), error) {
	switch strings.ToLower(opts.source) {
	case config.SourceFixture:
		if opts.fixturePath == "" {
			return nil, nil, ErrMissingFixture
		}
		return fixture.NewFixtureRepository(opts.fixturePath), func() {}, nil

	case config.SourcePostgres:
		if opts.cfg.Database.Password == "" {
			return nil, nil, errors.New("missing database password")
		}
		if len(opts.cfg.Recommend.OrderStatuses) == 0 {
			return nil, nil, errors.New("missing order statuses")
		}

		db, err := database.InitPostgres(opts.cfg)
		if err != nil {
			return nil, nil, err
		}

		closeDB := func() {
			if err := database.Close(db); err != nil {
				logger.Warn("failed to close database", "error", err)
			}
		}
		return postgres.NewInteractionRepository(db, opts.cfg.Recommend.OrderStatuses), closeDB, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSource, opts.source)
	}
}
