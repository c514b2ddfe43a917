package usecase

import (
	"testing"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

func TestFilterCatalog(t *testing.T) {
	filter := NewLookFilter(NewItemMatcher(MatcherConfig{}))

	rows := []domain.CatalogRow{
		row("dress", "blue silk dress", "blue", "", "female", "u1"),
		row("dress", "blue slip dress", "blue", "", "female", "u2"),
		row("dress", "red dress", "red", "", "female", "u3"),
		row("sneakers", "white sneakers", "white", "", "female", "u4"),
		row("sneakers", "black sneakers", "black", "", "female", "u5"),
		row("coat", "wool coat", "beige", "", "male", "u6"),
	}

	t.Run("keys follow slot category index format", func(t *testing.T) {
		look := &domain.OutfitRequest{
			Sex:   "f",
			Full:  domain.ItemList{{Category: "dress", Color: "blue"}},
			Shoes: domain.ItemList{{Category: "sneakers"}},
		}

		got := filter.FilterCatalog(rows, look, 10, true)
		if len(got) != 2 {
			t.Fatalf("got %d keys, want 2: %v", len(got), keysOf(got))
		}
		if _, ok := got["full_dress_0"]; !ok {
			t.Errorf("missing key full_dress_0, got %v", keysOf(got))
		}
		if _, ok := got["shoes_sneakers_0"]; !ok {
			t.Errorf("missing key shoes_sneakers_0, got %v", keysOf(got))
		}
	})

	t.Run("empty matches omit the key entirely", func(t *testing.T) {
		look := &domain.OutfitRequest{
			Outerwear: domain.ItemList{{Category: "jacket"}},
			Shoes:     domain.ItemList{{Category: "sneakers"}},
		}

		got := filter.FilterCatalog(rows, look, 10, true)
		if _, ok := got["outerwear_jacket_0"]; ok {
			t.Error("unmatched item produced a key")
		}
		if len(got) != 1 {
			t.Errorf("got %d keys, want 1: %v", len(got), keysOf(got))
		}
	})

	t.Run("blank category items keep their index position", func(t *testing.T) {
		look := &domain.OutfitRequest{
			Shoes: domain.ItemList{{Category: ""}, {Category: "sneakers"}},
		}

		got := filter.FilterCatalog(rows, look, 10, true)
		if _, ok := got["shoes_sneakers_1"]; !ok {
			t.Errorf("blank item shifted the index, got %v", keysOf(got))
		}
	})

	t.Run("max per item caps each result", func(t *testing.T) {
		look := &domain.OutfitRequest{
			Full:  domain.ItemList{{Category: "dress"}},
			Shoes: domain.ItemList{{Category: "sneakers"}},
		}

		got := filter.FilterCatalog(rows, look, 1, true)
		for key, matched := range got {
			if len(matched) != 1 {
				t.Errorf("key %s holds %d rows, want exactly 1", key, len(matched))
			}
		}
	})

	t.Run("non positive max per item defaults to one", func(t *testing.T) {
		look := &domain.OutfitRequest{Full: domain.ItemList{{Category: "dress"}}}

		got := filter.FilterCatalog(rows, look, 0, true)
		if matched := got["full_dress_0"]; len(matched) != 1 {
			t.Errorf("got %d rows, want 1", len(matched))
		}
	})

	t.Run("gender policy excludes other sex rows", func(t *testing.T) {
		look := &domain.OutfitRequest{
			Sex:       "f",
			Outerwear: domain.ItemList{{Category: "coat"}},
		}

		got := filter.FilterCatalog(rows, look, 10, true)
		if _, ok := got["outerwear_coat_0"]; ok {
			t.Error("male coat matched a female look")
		}
	})

	t.Run("nil look yields empty result", func(t *testing.T) {
		got := filter.FilterCatalog(rows, nil, 10, true)
		if len(got) != 0 {
			t.Errorf("got %d keys, want 0", len(got))
		}
	})
}

func keysOf(m domain.MatchResult) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
