package command

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidRequest = errors.New("invalid request")

var validate = validator.New()

type RecommendRequest struct {
	UserID string `validate:"required"`
	K      int    `validate:"gte=0"`
}

type SimilarityRequest struct {
	UserA string `validate:"required"`
	UserB string `validate:"required"`
}

type UserRequest struct {
	UserID string `validate:"required"`
}

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}
