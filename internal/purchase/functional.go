package purchase

import (
	"context"
	"fmt"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// applyFunctionalEffects dispatches FUNCTIONAL line effects inside the
// purchase transaction. GEM_GRANT credits the wallet in-place and is settled
// at commit; GAMEPLAY_MODIFIER is only recorded here and delegated to the
// game-systems consumer through the published payload. Returns the payloads
// to publish after commit and the wallet balance after any credits.
func (s *service) applyFunctionalEffects(ctx context.Context, tx repository.StoreTx, accountID, orderID string, resolved []resolvedLine, balance int64) ([]domain.EffectAppliedPayload, int64, error) {
	var payloads []domain.EffectAppliedPayload
	now := s.now().Unix()

	for _, line := range resolved {
		item := line.item
		if item.DeliveryChannel != domain.DeliveryFunctional {
			continue
		}
		// A FUNCTIONAL item without usable effect metadata is a catalog
		// misconfiguration, not a state conflict
		if item.Effect == nil {
			return nil, 0, fmt.Errorf("%s: %s: %w", ErrMsgEffectMissing, item.ID, domain.ErrInvalidRequest)
		}

		payload := domain.EffectAppliedPayload{
			AccountID: accountID,
			OrderID:   orderID,
			ItemID:    item.ID,
			Effect:    item.Effect.Kind,
			Quantity:  line.quantity,
			Timestamp: now,
		}

		switch item.Effect.Kind {
		case domain.EffectGemGrant:
			grant := item.Effect.GrantAmount * int64(line.quantity)
			if grant <= 0 {
				return nil, 0, fmt.Errorf("%s: %s: %w", ErrMsgEffectGrantInvalid, item.ID, domain.ErrInvalidRequest)
			}

			credited, err := tx.CreditWallet(ctx, accountID, grant)
			if err != nil {
				return nil, 0, err
			}
			balance = credited.Balance

			if _, err := tx.InsertWalletTransaction(ctx, domain.WalletTransaction{
				WalletID:    credited.ID,
				Kind:        domain.TransactionCredit,
				Amount:      grant,
				Description: DescriptionGemGrant,
				ReferenceID: domain.ReferencePrefixEffect + orderID,
			}); err != nil {
				return nil, 0, err
			}

			payload.GrantedAmount = grant
			payload.Settled = true

		case domain.EffectGameplayModifier:
			payload.Modifier = item.Effect.Modifier
			payload.DurationSeconds = item.Effect.DurationSeconds
			payload.Settled = false

		default:
			return nil, 0, fmt.Errorf("%s: %q: %w", ErrMsgEffectUnknown, item.Effect.Kind, domain.ErrInvalidRequest)
		}

		payloads = append(payloads, payload)
	}

	return payloads, balance, nil
}
