package purchase

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

// Service defines the interface for purchase operations
type Service interface {
	// CreatePurchase runs the atomic purchase transaction: ownership guard,
	// conditional debit, order and line creation, inventory grants,
	// functional effects and fulfillment records all commit together or not
	// at all.
	CreatePurchase(ctx context.Context, accountID string, lines []domain.PurchaseLine, idempotencyKey string) (*domain.PurchaseResult, error)
	GetOrder(ctx context.Context, orderID string) (*domain.OrderWithLines, error)
	ListOrders(ctx context.Context, accountID string, filter domain.OrderHistoryFilter) ([]domain.OrderWithLines, error)
}

// resolvedLine pairs a requested line with its catalog row
type resolvedLine struct {
	item     *domain.CatalogItem
	quantity int
}

type service struct {
	store       repository.Store
	wallets     repository.Wallet
	catalog     catalog.Service
	publisher   Publisher
	dedupWindow time.Duration
	now         func() time.Time
}

// NewService creates a new purchase service
func NewService(store repository.Store, wallets repository.Wallet, catalogSvc catalog.Service, publisher Publisher, dedupWindow time.Duration) Service {
	return &service{
		store:       store,
		wallets:     wallets,
		catalog:     catalogSvc,
		publisher:   publisher,
		dedupWindow: dedupWindow,
		now:         time.Now,
	}
}

func (s *service) CreatePurchase(ctx context.Context, accountID string, lines []domain.PurchaseLine, idempotencyKey string) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreatePurchaseCalled, "account_id", accountID, "lines", len(lines), "idempotency_key", idempotencyKey)

	if accountID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgAccountRequired, domain.ErrInvalidRequest)
	}

	normalized, err := normalizeLines(lines)
	if err != nil {
		return nil, err
	}

	// A repeated key inside the window is a client retry of a purchase that
	// already committed, not a new purchase.
	if idempotencyKey != "" && s.dedupWindow > 0 {
		existing, err := s.store.FindRecentOrderByKey(ctx, accountID, idempotencyKey, s.dedupWindow)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			log.Warn(LogMsgPurchaseDeduplicated, "account_id", accountID, "order_id", existing.ID)
			return nil, fmt.Errorf("order %s: %w", existing.ID, domain.ErrDuplicatePurchase)
		}
	}

	resolved, total, err := s.resolveLines(ctx, normalized)
	if err != nil {
		return nil, err
	}

	// Confirms the account is registered before any mutation and provides the
	// balance when the transaction never touches the wallet.
	wallet, err := s.wallets.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Affordability precheck before the transaction opens. The conditional
	// debit re-verifies under isolation; this one fixes the error precedence
	// so an unaffordable purchase never reports an ownership conflict.
	if wallet.Balance < total {
		return nil, fmt.Errorf("balance %d, total %d: %w", wallet.Balance, total, domain.ErrInsufficientFunds)
	}

	result, effects, err := s.runPurchaseTx(ctx, accountID, wallet, resolved, total, idempotencyKey)
	if err != nil {
		return nil, err
	}

	s.publishPurchase(ctx, accountID, result, effects)

	log.Info(LogMsgPurchaseCompleted,
		"account_id", accountID,
		"order_id", result.Order.ID,
		"total", total,
		"new_balance", result.NewBalance)
	return result, nil
}

// resolveLines loads catalog rows for every requested line and computes the
// order total. Inactive and unknown items reject the whole purchase.
func (s *service) resolveLines(ctx context.Context, lines []domain.PurchaseLine) ([]resolvedLine, int64, error) {
	resolved := make([]resolvedLine, 0, len(lines))
	var total int64
	for _, line := range lines {
		item, err := s.catalog.GetPurchasable(ctx, line.ItemID)
		if err != nil {
			return nil, 0, fmt.Errorf("item %s: %w", line.ItemID, err)
		}
		if err := validateStacking(item, line.Quantity); err != nil {
			return nil, 0, err
		}
		resolved = append(resolved, resolvedLine{item: item, quantity: line.Quantity})
		total += item.Price * int64(line.Quantity)
	}
	return resolved, total, nil
}

func (s *service) runPurchaseTx(ctx context.Context, accountID string, wallet *domain.Wallet, resolved []resolvedLine, total int64, idempotencyKey string) (*domain.PurchaseResult, []domain.EffectAppliedPayload, error) {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Unique-ownership guard runs first so an already-owned item rejects the
	// purchase before the wallet is touched.
	if err := s.guardUniqueOwnership(ctx, tx, accountID, resolved); err != nil {
		return nil, nil, err
	}

	newBalance := wallet.Balance
	var debitEntry *domain.WalletTransaction
	if total > 0 {
		debited, err := tx.DebitWallet(ctx, accountID, total)
		if err != nil {
			return nil, nil, err
		}
		newBalance = debited.Balance

		debitEntry, err = tx.InsertWalletTransaction(ctx, domain.WalletTransaction{
			WalletID:    debited.ID,
			Kind:        domain.TransactionDebit,
			Amount:      total,
			Description: DescriptionPurchase,
		})
		if err != nil {
			return nil, nil, err
		}
	}

	order, err := tx.InsertOrder(ctx, accountID, total, idempotencyKey)
	if err != nil {
		return nil, nil, err
	}

	orderLines := make([]domain.OrderLine, 0, len(resolved))
	for _, line := range resolved {
		orderLines = append(orderLines, domain.OrderLine{
			OrderID:   order.ID,
			ItemID:    line.item.ID,
			Quantity:  line.quantity,
			UnitPrice: line.item.Price,
			LineTotal: line.item.Price * int64(line.quantity),
		})
	}
	if err := tx.InsertOrderLines(ctx, order.ID, orderLines); err != nil {
		return nil, nil, err
	}

	// The debit row is written before the order exists, so its reference is
	// backfilled once the order ID is known.
	if debitEntry != nil {
		if err := tx.SetTransactionReference(ctx, debitEntry.ID, domain.ReferencePrefixOrder+order.ID); err != nil {
			return nil, nil, err
		}
	}

	for _, line := range resolved {
		if line.item.SkipsInventory() {
			continue
		}
		if _, err := tx.GrantInventory(ctx, accountID, line.item.ID, line.quantity, line.item.Stacking); err != nil {
			return nil, nil, err
		}
	}

	effects, newBalance, err := s.applyFunctionalEffects(ctx, tx, accountID, order.ID, resolved, newBalance)
	if err != nil {
		return nil, nil, err
	}

	fulfillments, err := s.createFulfillments(ctx, tx, accountID, order.ID, resolved)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &domain.PurchaseResult{
		Order:        *order,
		Lines:        orderLines,
		Fulfillments: fulfillments,
		NewBalance:   newBalance,
	}, effects, nil
}

func (s *service) guardUniqueOwnership(ctx context.Context, tx repository.StoreTx, accountID string, resolved []resolvedLine) error {
	var uniqueIDs []string
	for _, line := range resolved {
		if line.item.Stacking == domain.StackingUnique {
			uniqueIDs = append(uniqueIDs, line.item.ID)
		}
	}
	if len(uniqueIDs) == 0 {
		return nil
	}

	owned, err := tx.FindOwnedUnique(ctx, accountID, uniqueIDs)
	if err != nil {
		return err
	}
	if len(owned) > 0 {
		return fmt.Errorf("item %s: %w", owned[0], domain.ErrAlreadyOwned)
	}
	return nil
}

func (s *service) createFulfillments(ctx context.Context, tx repository.StoreTx, accountID, orderID string, resolved []resolvedLine) ([]domain.Fulfillment, error) {
	now := s.now()
	fulfillments := make([]domain.Fulfillment, 0, len(resolved))
	for _, line := range resolved {
		status := domain.InitialFulfillmentStatus(line.item.DeliveryChannel)
		f := domain.Fulfillment{
			OrderID:         orderID,
			AccountID:       accountID,
			ItemID:          line.item.ID,
			Status:          status,
			DeliveryChannel: line.item.DeliveryChannel,
		}
		if status == domain.FulfillmentCompleted {
			f.CompletedAt = &now
		}

		created, err := tx.InsertFulfillment(ctx, f)
		if err != nil {
			return nil, err
		}
		fulfillments = append(fulfillments, *created)
	}
	return fulfillments, nil
}

func (s *service) publishPurchase(ctx context.Context, accountID string, result *domain.PurchaseResult, effects []domain.EffectAppliedPayload) {
	if s.publisher == nil {
		return
	}

	s.publisher.PublishWithRetry(ctx, event.NewPurchaseCompletedEvent(
		accountID, result.Order.ID, result.Order.TotalAmount, len(result.Lines)))

	for _, payload := range effects {
		s.publisher.PublishWithRetry(ctx, event.NewEffectAppliedEvent(payload))
	}
}

func (s *service) GetOrder(ctx context.Context, orderID string) (*domain.OrderWithLines, error) {
	logger.FromContext(ctx).Debug(LogMsgGetOrderCalled, "order_id", orderID)
	return s.store.GetOrderWithLines(ctx, orderID)
}

func (s *service) ListOrders(ctx context.Context, accountID string, filter domain.OrderHistoryFilter) ([]domain.OrderWithLines, error) {
	logger.FromContext(ctx).Debug(LogMsgListOrdersCalled, "account_id", accountID)

	if filter.Limit <= 0 {
		filter.Limit = DefaultHistoryLimit
	}
	if filter.Limit > MaxHistoryLimit {
		filter.Limit = MaxHistoryLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.store.ListOrders(ctx, accountID, filter)
}
