package purchase

import (
	"fmt"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

// normalizeLines validates the requested lines and merges duplicate item IDs
// into a single line, preserving first-seen order.
func normalizeLines(lines []domain.PurchaseLine) ([]domain.PurchaseLine, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", ErrMsgNoLines, domain.ErrInvalidRequest)
	}

	merged := make([]domain.PurchaseLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if line.ItemID == "" {
			return nil, fmt.Errorf("line has no item id: %w", domain.ErrInvalidRequest)
		}
		if line.Quantity < domain.MinLineQuantity || line.Quantity > domain.MaxLineQuantity {
			return nil, fmt.Errorf(ErrMsgInvalidQuantityFmt, line.Quantity, line.ItemID, domain.ErrInvalidRequest)
		}
		if i, seen := index[line.ItemID]; seen {
			merged[i].Quantity += line.Quantity
			if merged[i].Quantity > domain.MaxLineQuantity {
				return nil, fmt.Errorf(ErrMsgInvalidQuantityFmt, merged[i].Quantity, line.ItemID, domain.ErrInvalidRequest)
			}
			continue
		}
		index[line.ItemID] = len(merged)
		merged = append(merged, line)
	}

	if len(merged) > domain.MaxPurchaseLines {
		return nil, fmt.Errorf(ErrMsgTooManyLinesFmt, len(merged), domain.MaxPurchaseLines, domain.ErrInvalidRequest)
	}
	return merged, nil
}

// validateStacking enforces per-item stacking rules on a resolved line.
func validateStacking(item *domain.CatalogItem, quantity int) error {
	if item.Stacking == domain.StackingUnique && quantity != 1 {
		return fmt.Errorf(ErrMsgUniqueQuantityFmt, item.ID, quantity, domain.ErrInvalidRequest)
	}
	return nil
}
