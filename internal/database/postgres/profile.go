package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

const profileColumns = `profile_id, account_id, scope, name, is_active, metadata, created_at`

// ProfileRepository implements the character profile repository for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// ProfileTx implements repository.ProfileTx
type ProfileTx struct {
	tx pgx.Tx
}

// BeginTx starts a new activation transaction
func (r *ProfileRepository) BeginTx(ctx context.Context) (repository.ProfileTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &ProfileTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *ProfileTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *ProfileTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// Create inserts a new profile. A duplicate (account, scope, name) maps to
// domain.ErrProfileNameTaken.
func (r *ProfileRepository) Create(ctx context.Context, profile domain.CharacterProfile) (*domain.CharacterProfile, error) {
	var metadataJSON []byte
	if len(profile.Metadata) > 0 {
		var err error
		metadataJSON, err = json.Marshal(profile.Metadata)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalProfile, err)
		}
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO character_profiles (account_id, scope, name, is_active, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING profile_id, created_at`,
		profile.AccountID, profile.Scope, profile.Name, profile.IsActive, metadataJSON,
	).Scan(&profile.ID, &profile.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrProfileNameTaken
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertProfile, err)
	}
	return &profile, nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, profileID string) (*domain.CharacterProfile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM character_profiles WHERE profile_id = $1`, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}
	return profile, nil
}

// ListByAccount returns all of the account's profiles
func (r *ProfileRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.CharacterProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+` FROM character_profiles WHERE account_id = $1 ORDER BY created_at`, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryProfiles, err)
	}
	defer rows.Close()

	profiles := []domain.CharacterProfile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

// GetActive returns the active profile in the (account, scope) partition, or
// domain.ErrProfileNotFound when the partition has none
func (r *ProfileRepository) GetActive(ctx context.Context, accountID, scope string) (*domain.CharacterProfile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM character_profiles WHERE account_id = $1 AND scope = $2 AND is_active`,
		accountID, scope))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}
	return profile, nil
}

// Delete removes the profile; equipped items cascade
func (r *ProfileRepository) Delete(ctx context.Context, profileID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM character_profiles WHERE profile_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteProfile, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// GetForUpdate retrieves the profile with a row lock held for the transaction
func (t *ProfileTx) GetForUpdate(ctx context.Context, profileID string) (*domain.CharacterProfile, error) {
	profile, err := scanProfile(t.tx.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM character_profiles WHERE profile_id = $1 FOR UPDATE`, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}
	return profile, nil
}

// DeactivatePartition clears the active flag across the (account, scope) partition
func (t *ProfileTx) DeactivatePartition(ctx context.Context, accountID, scope string) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE character_profiles SET is_active = FALSE WHERE account_id = $1 AND scope = $2 AND is_active`,
		accountID, scope)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearActive, err)
	}
	return nil
}

// Activate sets the profile active
func (t *ProfileTx) Activate(ctx context.Context, profileID string) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE character_profiles SET is_active = TRUE WHERE profile_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetActive, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*domain.CharacterProfile, error) {
	var profile domain.CharacterProfile
	var metadataJSON []byte
	err := row.Scan(&profile.ID, &profile.AccountID, &profile.Scope, &profile.Name,
		&profile.IsActive, &metadataJSON, &profile.CreatedAt)
	if err != nil {
		return nil, err
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &profile.Metadata); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalProfile, err)
		}
	}
	return &profile, nil
}
