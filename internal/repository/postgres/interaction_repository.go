package postgres

import (
	"context"
	"fmt"
	"myGreenReco/domain"
	"strconv"

	"gorm.io/gorm"
)

// InteractionRepository reads purchase history out of the orders table.
// It never writes.
type InteractionRepository struct {
	DB       *gorm.DB
	statuses []string
}

func NewInteractionRepository(db *gorm.DB, statuses []string) *InteractionRepository {
	return &InteractionRepository{
		DB:       db,
		statuses: statuses,
	}
}

type purchaseRow struct {
	UserID    uint64
	ProductID uint64
}

// FindAll returns one interaction per distinct (user, product) purchase
// with a counted order status, ordered by user then product.
func (r *InteractionRepository) FindAll(ctx context.Context) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []purchaseRow
	err := r.DB.WithContext(ctx).
		Model(&domain.OrderLine{}).
		Distinct("user_id", "product_id").
		Where("order_status IN ?", r.statuses).
		Order("user_id").
		Order("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases: %w", err)
	}

	return toInteractions(rows), nil
}

func toInteractions(rows []purchaseRow) []domain.Interaction {
	out := make([]domain.Interaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Interaction{
			UserID:    domain.UserID(strconv.FormatUint(row.UserID, 10)),
			ProductID: domain.ProductID(strconv.FormatUint(row.ProductID, 10)),
		})
	}
	return out
}
