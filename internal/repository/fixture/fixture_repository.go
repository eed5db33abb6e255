package fixture

import (
	"context"
	"errors"
	"fmt"
	"myGreenReco/domain"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported fixture format")

// Document is the on-disk fixture layout:
//
//	users:
//	  - id: user1
//	    products: [productA, productB]
type Document struct {
	Users []UserEntry `json:"users" yaml:"users" validate:"dive"`
}

type UserEntry struct {
	ID       string   `json:"id" yaml:"id" validate:"required"`
	Products []string `json:"products" yaml:"products" validate:"dive,required"`
}

// Interactions flattens the document. A user without products yields a
// single registration row.
func (d Document) Interactions() []domain.Interaction {
	var out []domain.Interaction
	for _, u := range d.Users {
		user := domain.UserID(u.ID)
		if len(u.Products) == 0 {
			out = append(out, domain.Interaction{UserID: user})
			continue
		}
		for _, p := range u.Products {
			out = append(out, domain.Interaction{UserID: user, ProductID: domain.ProductID(p)})
		}
	}
	return out
}

type FixtureRepository struct {
	path     string
	validate *validator.Validate
}

func NewFixtureRepository(path string) *FixtureRepository {
	return &FixtureRepository{
		path:     path,
		validate: validator.New(),
	}
}

func (r *FixtureRepository) FindAll(ctx context.Context) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	doc, err := Parse(data, filepath.Ext(r.path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", r.path, err)
	}

	if err := r.validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid fixture %s: %w", r.path, err)
	}

	return doc.Interactions(), nil
}

// Parse decodes data according to ext (".json", ".yaml" or ".yml").
func Parse(data []byte, ext string) (Document, error) {
	var doc Document

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, err
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return doc, nil
}
