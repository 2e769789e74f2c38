package repository

import (
	"context"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

// Profile defines the interface for character profile persistence
type Profile interface {
	Create(ctx context.Context, profile domain.CharacterProfile) (*domain.CharacterProfile, error)
	GetByID(ctx context.Context, profileID string) (*domain.CharacterProfile, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.CharacterProfile, error)
	GetActive(ctx context.Context, accountID, scope string) (*domain.CharacterProfile, error)
	// Delete removes the profile and cascades to its equipped items.
	Delete(ctx context.Context, profileID string) error
	BeginTx(ctx context.Context) (ProfileTx, error)
}

// ProfileTx defines the interface for activation transactions. Activation
// clears the (account, scope) partition before setting the new active row so
// at most one profile per partition is ever active.
type ProfileTx interface {
	Tx
	GetForUpdate(ctx context.Context, profileID string) (*domain.CharacterProfile, error)
	DeactivatePartition(ctx context.Context, accountID, scope string) error
	Activate(ctx context.Context, profileID string) error
}
