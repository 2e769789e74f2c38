package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/event"
	"github.com/orvane/Gemstore_Go/internal/logger"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// Publisher is the event publishing surface the service needs
type Publisher interface {
	PublishWithRetry(ctx context.Context, event event.Event)
}

// Service defines the interface for character profile management
type Service interface {
	CreateProfile(ctx context.Context, accountID, scope, name string, metadata map[string]string) (*domain.CharacterProfile, error)
	GetProfile(ctx context.Context, accountID, profileID string) (*domain.CharacterProfile, error)
	ListProfiles(ctx context.Context, accountID string) ([]domain.CharacterProfile, error)
	// GetActive returns the active profile of the (account, scope) partition.
	GetActive(ctx context.Context, accountID, scope string) (*domain.CharacterProfile, error)
	// Activate makes the profile the single active one in its partition,
	// deactivating whichever profile held that position. Activating the
	// already-active profile is a no-op.
	Activate(ctx context.Context, accountID, profileID string) (*domain.CharacterProfile, error)
	// DeleteProfile removes the profile; its equipped items cascade.
	DeleteProfile(ctx context.Context, accountID, profileID string) error
}

type service struct {
	repo      repository.Profile
	publisher Publisher
}

// NewService creates a new profile service
func NewService(repo repository.Profile, publisher Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) CreateProfile(ctx context.Context, accountID, scope, name string, metadata map[string]string) (*domain.CharacterProfile, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateProfileCalled, "account_id", accountID, "scope", scope, "name", name)

	if accountID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgAccountRequired, domain.ErrInvalidRequest)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgNameRequired, domain.ErrInvalidRequest)
	}
	if len(name) > MaxNameLength {
		return nil, fmt.Errorf(ErrMsgNameTooLongFmt, MaxNameLength, domain.ErrInvalidRequest)
	}

	created, err := s.repo.Create(ctx, domain.CharacterProfile{
		AccountID: accountID,
		Scope:     scope,
		Name:      name,
		Metadata:  metadata,
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgProfileCreated, "account_id", accountID, "profile_id", created.ID)
	return created, nil
}

func (s *service) GetProfile(ctx context.Context, accountID, profileID string) (*domain.CharacterProfile, error) {
	return s.ownedProfile(ctx, accountID, profileID)
}

func (s *service) ListProfiles(ctx context.Context, accountID string) ([]domain.CharacterProfile, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgAccountRequired, domain.ErrInvalidRequest)
	}
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *service) GetActive(ctx context.Context, accountID, scope string) (*domain.CharacterProfile, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgAccountRequired, domain.ErrInvalidRequest)
	}
	return s.repo.GetActive(ctx, accountID, scope)
}

func (s *service) Activate(ctx context.Context, accountID, profileID string) (*domain.CharacterProfile, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgActivateCalled, "account_id", accountID, "profile_id", profileID)

	if profileID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgProfileRequired, domain.ErrInvalidRequest)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetForUpdate(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.AccountID != accountID {
		// Do not reveal other accounts' profile IDs
		return nil, fmt.Errorf("profile %s: %w", profileID, domain.ErrProfileNotFound)
	}
	if profile.IsActive {
		log.Info(LogMsgAlreadyActive, "profile_id", profileID)
		return profile, nil
	}

	if err := tx.DeactivatePartition(ctx, profile.AccountID, profile.Scope); err != nil {
		return nil, err
	}
	if err := tx.Activate(ctx, profileID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	profile.IsActive = true

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewProfileActivatedEvent(profile.AccountID, profile.ID, profile.Scope))
	}

	log.Info(LogMsgProfileActivated, "account_id", accountID, "profile_id", profileID, "scope", profile.Scope)
	return profile, nil
}

func (s *service) DeleteProfile(ctx context.Context, accountID, profileID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDeleteCalled, "account_id", accountID, "profile_id", profileID)

	if _, err := s.ownedProfile(ctx, accountID, profileID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, profileID); err != nil {
		return err
	}

	log.Info(LogMsgProfileDeleted, "account_id", accountID, "profile_id", profileID)
	return nil
}

// ownedProfile loads a profile and verifies account ownership. Foreign
// profiles surface as not-found.
func (s *service) ownedProfile(ctx context.Context, accountID, profileID string) (*domain.CharacterProfile, error) {
	if profileID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgProfileRequired, domain.ErrInvalidRequest)
	}
	profile, err := s.repo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.AccountID != accountID {
		return nil, fmt.Errorf("profile %s: %w", profileID, domain.ErrProfileNotFound)
	}
	return profile, nil
}
