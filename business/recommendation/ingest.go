package recommendation

import (
	"context"
	"fmt"
	"myGreenReco/domain"
	"myGreenReco/pkg/logger"
	"myGreenReco/pkg/metrics"
)

type InteractionRepository interface {
	FindAll(ctx context.Context) ([]domain.Interaction, error)
}

type GraphWriter interface {
	RegisterUser(user domain.UserID)
	AddInteraction(user domain.UserID, product domain.ProductID)
	Len() int
}

// Ingestor populates a graph from an interaction source.
type Ingestor struct {
	repo  InteractionRepository
	graph GraphWriter
}

func NewIngestor(repo InteractionRepository, graph GraphWriter) *Ingestor {
	return &Ingestor{
		repo:  repo,
		graph: graph,
	}
}

// Load fetches every row from the repository and applies it to the graph.
// Rows are fetched before any mutation, so a failing source leaves the
// graph as it was. It returns the number of rows applied.
func (i *Ingestor) Load(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	rows, err := i.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load interactions: %w", err)
	}

	for _, row := range rows {
		if row.ProductID == "" {
			i.graph.RegisterUser(row.UserID)
			continue
		}
		i.graph.AddInteraction(row.UserID, row.ProductID)
	}

	users := i.graph.Len()
	metrics.GraphUsers.Set(float64(users))

	logger.Info("interactions loaded",
		"trace_id", TraceIDFromContext(ctx),
		"rows", len(rows),
		"users", users,
	)

	return len(rows), nil
}
