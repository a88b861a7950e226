package server

import (
	"context"
	"errors"

	"github.com/zipcheck/rentcheck/internal/checklist"
)

var ErrNotFound = errors.New("not found")

// SessionDoc is one wizard session: the flow state plus the two state
// slices with independent lifecycles (safety toggles, cost inputs).
// Reset rewrites all three together.
type SessionDoc struct {
	ID        string                `json:"id"`
	CreatedAt string                `json:"createdAt"`
	UpdatedAt string                `json:"updatedAt"`
	State     checklist.State       `json:"state"`
	Safety    checklist.SafetyTerms `json:"safety"`
	Costs     checklist.CostInputs  `json:"costs"`
}

type Store interface {
	CreateSession(ctx context.Context) (SessionDoc, error)
	Session(ctx context.Context, id string) (SessionDoc, error)
	SaveSession(ctx context.Context, doc SessionDoc) error
}
