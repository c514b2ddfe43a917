package usecase

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

// defaultStageFloor is the minimum distinct rows a refined stage must keep
// before the refinement is accepted instead of falling back.
const defaultStageFloor = 2

// Recognized gender tags after normalization.
const (
	SexFemale = "female"
	SexMale   = "male"
	SexUnisex = "unisex"
)

// MatcherConfig holds configuration for the item matcher
type MatcherConfig struct {
	StageFloor         int
	EnableDebugLogging bool
}

// ItemMatcher narrows the catalog to the most attribute-specific subset of
// rows that still meets the stage floor, falling back to the last broad
// enough stage when a stricter filter is too small.
type ItemMatcher struct {
	stageFloor         int
	enableDebugLogging bool
}

// NewItemMatcher creates a new item matcher with the given configuration
func NewItemMatcher(config MatcherConfig) *ItemMatcher {
	floor := config.StageFloor
	if floor <= 0 {
		floor = defaultStageFloor
	}

	return &ItemMatcher{
		stageFloor:         floor,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// NormalizeSex maps free-form sex tokens to the canonical gender tags.
// Abbreviations are accepted case-insensitively; unrecognized or empty
// values normalize to "" which disables gender filtering.
func NormalizeSex(sex string) string {
	switch strings.ToLower(strings.TrimSpace(sex)) {
	case "f", SexFemale:
		return SexFemale
	case "m", SexMale:
		return SexMale
	case "u", SexUnisex:
		return SexUnisex
	}
	return ""
}

// FilterByGender narrows the catalog to rows compatible with the requested
// sex. With allowUnisex, unisex-tagged rows stay eligible alongside the
// requested sex; without it only exact-sex rows remain. An unresolved sex
// keeps everything. The input slice is never mutated.
func FilterByGender(rows []domain.CatalogRow, sex string, allowUnisex bool) []domain.CatalogRow {
	resolved := NormalizeSex(sex)
	if resolved == "" {
		out := make([]domain.CatalogRow, len(rows))
		copy(out, rows)
		return out
	}

	out := make([]domain.CatalogRow, 0, len(rows))
	for _, row := range rows {
		gender := strings.ToLower(row.Gender)
		if gender == resolved || (allowUnisex && gender == SexUnisex) {
			out = append(out, row)
		}
	}
	return out
}

// refinementStage is one attribute-narrowing step of the cascade.
type refinementStage struct {
	name  string
	value string
	apply func(rows []domain.CatalogRow, value string) []domain.CatalogRow
}

// Match returns the most specific subset of rows for one requested item.
//
// The category stage is a hard requirement: no category matches means an
// empty result. Each later stage is a refinement applied only while the
// previous one kept at least stageFloor rows; a refinement that drops below
// the floor is abandoned and the previous stage's rows are returned
// unchanged. An unrequested attribute ends the cascade. Row order is a
// stable filter of the input order; no ranking is applied.
func (m *ItemMatcher) Match(rows []domain.CatalogRow, item domain.RequestedItem) []domain.CatalogRow {
	category := normalizeToken(item.Category)
	if category == "" {
		return nil
	}

	current := categoryStage(rows, category)
	if len(current) == 0 {
		if m.enableDebugLogging {
			log.Debug().Str("category", category).Msg("matcher: no category matches")
		}
		return nil
	}

	stages := []refinementStage{
		{name: "color", value: item.Color, apply: colorStage},
		{name: "fabric", value: item.Fabric, apply: nameContainsStage},
		{name: "pattern", value: item.Pattern, apply: nameContainsStage},
		{name: "detail", value: item.Detail, apply: detailStage},
	}

	for _, stage := range stages {
		value := normalizeToken(stage.value)
		if value == "" {
			break
		}

		refined := dedupByImageURL(stage.apply(current, value))
		if m.enableDebugLogging {
			log.Debug().
				Str("category", category).
				Str("stage", stage.name).
				Str("value", value).
				Int("before", len(current)).
				Int("after", len(refined)).
				Msg("matcher: stage applied")
		}
		if len(refined) < m.stageFloor {
			// Over-narrowing: keep the last stage with enough inventory.
			break
		}
		current = refined
	}

	return current
}

// categoryStage selects rows whose top-level category equals the requested
// category, unioned with rows whose name contains it. Duplicates across the
// two predicates are tolerated here; only refinement stages de-duplicate.
func categoryStage(rows []domain.CatalogRow, category string) []domain.CatalogRow {
	var out []domain.CatalogRow
	for _, row := range rows {
		if row.TopCategory() == category {
			out = append(out, row)
		}
	}
	for _, row := range rows {
		if strings.Contains(row.Name, category) {
			out = append(out, row)
		}
	}
	return out
}

// colorStage unions rows whose color field contains the token with rows
// whose name contains it, preserving that order.
func colorStage(rows []domain.CatalogRow, color string) []domain.CatalogRow {
	var out []domain.CatalogRow
	for _, row := range rows {
		if strings.Contains(row.Color, color) {
			out = append(out, row)
		}
	}
	for _, row := range rows {
		if strings.Contains(row.Name, color) {
			out = append(out, row)
		}
	}
	return out
}

// nameContainsStage keeps rows whose name contains the token. Used for the
// fabric and pattern stages, which match free-text tokens.
func nameContainsStage(rows []domain.CatalogRow, token string) []domain.CatalogRow {
	var out []domain.CatalogRow
	for _, row := range rows {
		if strings.Contains(row.Name, token) {
			out = append(out, row)
		}
	}
	return out
}

// detailStage keeps rows whose detail field equals the token exactly. The
// detail column is a controlled vocabulary, so no substring matching here.
func detailStage(rows []domain.CatalogRow, detail string) []domain.CatalogRow {
	var out []domain.CatalogRow
	for _, row := range rows {
		if row.Detail == detail {
			out = append(out, row)
		}
	}
	return out
}

// dedupByImageURL removes exact duplicates, keeping the first occurrence of
// each image URL.
func dedupByImageURL(rows []domain.CatalogRow) []domain.CatalogRow {
	seen := make(map[string]bool, len(rows))
	out := make([]domain.CatalogRow, 0, len(rows))
	for _, row := range rows {
		if seen[row.ImageURL] {
			continue
		}
		seen[row.ImageURL] = true
		out = append(out, row)
	}
	return out
}

// normalizeToken lowercases and trims a requested attribute token.
func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
