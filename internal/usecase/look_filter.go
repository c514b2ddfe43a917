package usecase

import (
	"fmt"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

// LookFilter orchestrates the item matcher across every garment slot of a
// structured outfit request.
type LookFilter struct {
	matcher *ItemMatcher
}

// NewLookFilter creates a look filter around the given matcher
func NewLookFilter(matcher *ItemMatcher) *LookFilter {
	return &LookFilter{matcher: matcher}
}

// FilterCatalog applies the gender policy once, then matches each requested
// item of each slot in the fixed slot order.
//
// The result is keyed "{slot}_{category}_{idx}" and holds at most maxPerItem
// rows per key. Slots and items that yield no match are omitted entirely;
// items with a blank category are skipped without error. The catalog slice
// is treated as an immutable snapshot.
func (f *LookFilter) FilterCatalog(
	rows []domain.CatalogRow,
	look *domain.OutfitRequest,
	maxPerItem int,
	allowUnisex bool,
) domain.MatchResult {
	if look == nil {
		return domain.MatchResult{}
	}
	if maxPerItem <= 0 {
		maxPerItem = 1
	}

	base := FilterByGender(rows, look.Sex, allowUnisex)

	results := make(domain.MatchResult)
	for _, slot := range domain.SlotOrder {
		for idx, item := range look.Slot(slot) {
			category := normalizeToken(item.Category)
			if category == "" {
				continue
			}

			matched := f.matcher.Match(base, item)
			if len(matched) == 0 {
				continue
			}
			if len(matched) > maxPerItem {
				matched = matched[:maxPerItem]
			}

			key := fmt.Sprintf("%s_%s_%d", slot, category, idx)
			results[key] = matched
		}
	}

	return results
}
