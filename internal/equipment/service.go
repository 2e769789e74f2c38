package equipment

import (
	"context"
	"fmt"
	"time"

	"github.com/orvane/Gemstore_Go/internal/catalog"
	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/event"
	"github.com/orvane/Gemstore_Go/internal/logger"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// Publisher is the event publishing surface the service needs
type Publisher interface {
	PublishWithRetry(ctx context.Context, event event.Event)
}

// Service defines the interface for equipment slot management
type Service interface {
	// Equip attaches an owned item to a slot on the profile. The target slot
	// and any slot the item already occupies are vacated in the same
	// transaction, so slot and item exclusivity always hold. An empty slot
	// argument resolves the slot from the item.
	Equip(ctx context.Context, accountID, profileID, itemID string, slot domain.EquipSlot) (*domain.EquippedItem, error)
	UnequipItem(ctx context.Context, accountID, profileID, itemID string) error
	UnequipSlot(ctx context.Context, accountID, profileID string, slot domain.EquipSlot) error
	ListEquipped(ctx context.Context, accountID, profileID string) ([]domain.EquippedItem, error)
}

type service struct {
	repo      repository.Equipment
	profiles  repository.Profile
	catalog   catalog.Service
	publisher Publisher
	now       func() time.Time
}

// NewService creates a new equipment service
func NewService(repo repository.Equipment, profiles repository.Profile, catalogSvc catalog.Service, publisher Publisher) Service {
	return &service{
		repo:      repo,
		profiles:  profiles,
		catalog:   catalogSvc,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) Equip(ctx context.Context, accountID, profileID, itemID string, slot domain.EquipSlot) (*domain.EquippedItem, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipCalled, "account_id", accountID, "profile_id", profileID, "item_id", itemID, "slot", slot)

	if itemID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgItemRequired, domain.ErrInvalidRequest)
	}

	profile, err := s.ownedProfile(ctx, accountID, profileID)
	if err != nil {
		return nil, err
	}

	// Delisted items stay equippable while owned, so this is a plain catalog
	// read, not a purchasable check.
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.SkipsInventory() || item.DeliveryChannel == domain.DeliveryFunctional {
		return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrNotEquippable)
	}
	// Consumables stack; only UNIQUE items occupy slots.
	if item.Stacking == domain.StackingStackable {
		return nil, fmt.Errorf("item %s is stackable: %w", itemID, domain.ErrNotEquippable)
	}
	if item.Scope != "" && item.Scope != profile.Scope {
		return nil, fmt.Errorf("item scope %q, profile scope %q: %w", item.Scope, profile.Scope, domain.ErrScopeMismatch)
	}

	resolvedSlot, ok := domain.SlotForItem(*item, slot)
	if !ok {
		return nil, fmt.Errorf("category %q: %w", item.Category, domain.ErrUnknownSlot)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entry, err := tx.GetUsableEntry(ctx, accountID, itemID)
	if err != nil {
		return nil, err
	}
	if !entry.Usable() {
		return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrItemExhausted)
	}

	if err := tx.ClearSlot(ctx, profileID, resolvedSlot); err != nil {
		return nil, err
	}
	if err := tx.ClearItem(ctx, profileID, itemID); err != nil {
		return nil, err
	}

	equipped := domain.EquippedItem{
		ProfileID:  profileID,
		ItemID:     itemID,
		Slot:       resolvedSlot,
		EquippedAt: s.now(),
	}
	if err := tx.Insert(ctx, equipped); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewItemEquippedEvent(accountID, profileID, itemID, resolvedSlot))
	}

	log.Info(LogMsgItemEquipped, "profile_id", profileID, "item_id", itemID, "slot", resolvedSlot)
	return &equipped, nil
}

func (s *service) UnequipItem(ctx context.Context, accountID, profileID, itemID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnequipItemCalled, "profile_id", profileID, "item_id", itemID)

	if itemID == "" {
		return fmt.Errorf("%s: %w", ErrMsgItemRequired, domain.ErrInvalidRequest)
	}
	if _, err := s.ownedProfile(ctx, accountID, profileID); err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	removed, err := tx.RemoveItem(ctx, profileID, itemID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotEquipped)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgItemUnequipped, "profile_id", profileID, "item_id", itemID)
	return nil
}

func (s *service) UnequipSlot(ctx context.Context, accountID, profileID string, slot domain.EquipSlot) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnequipSlotCalled, "profile_id", profileID, "slot", slot)

	if _, err := s.ownedProfile(ctx, accountID, profileID); err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	removed, err := tx.RemoveSlot(ctx, profileID, slot)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("slot %s: %w", slot, domain.ErrSlotEmpty)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgItemUnequipped, "profile_id", profileID, "slot", slot)
	return nil
}

func (s *service) ListEquipped(ctx context.Context, accountID, profileID string) ([]domain.EquippedItem, error) {
	logger.FromContext(ctx).Debug(LogMsgListCalled, "profile_id", profileID)

	if _, err := s.ownedProfile(ctx, accountID, profileID); err != nil {
		return nil, err
	}
	return s.repo.ListEquipped(ctx, profileID)
}

// ownedProfile loads the profile and verifies account ownership. Foreign
// profiles surface as not-found.
func (s *service) ownedProfile(ctx context.Context, accountID, profileID string) (*domain.CharacterProfile, error) {
	if profileID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgProfileRequired, domain.ErrInvalidRequest)
	}
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.AccountID != accountID {
		return nil, fmt.Errorf("profile %s: %w", profileID, domain.ErrProfileNotFound)
	}
	return profile, nil
}
