package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// CatalogSource provides the immutable catalog snapshot the filter reads.
type CatalogSource interface {
	Rows() []domain.CatalogRow
}

// LookServiceConfig holds configuration for the look service
type LookServiceConfig struct {
	CacheTTL time.Duration
}

// LookService turns a free-text fashion request into matched catalog items.
// Flow: check cache -> ask the LLM stylist -> filter catalog -> cache -> return
type LookService struct {
	cache    domain.LookCache
	client   domain.LookClient
	catalog  CatalogSource
	filter   *LookFilter
	cacheTTL time.Duration
}

// NewLookService creates a new look service with dependencies
func NewLookService(
	cache domain.LookCache,
	client domain.LookClient,
	catalog CatalogSource,
	filter *LookFilter,
	config LookServiceConfig,
) *LookService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &LookService{
		cache:    cache,
		client:   client,
		catalog:  catalog,
		filter:   filter,
		cacheTTL: cacheTTL,
	}
}

// LookRequest is one user request for a styled outfit.
type LookRequest struct {
	Query       string `json:"query" binding:"required"`
	MaxPerItem  int    `json:"maxPerItem,omitempty"`
	AllowUnisex *bool  `json:"allowUnisex,omitempty"` // nil means allowed
}

// LookResponse carries the structured look and the matched catalog rows.
type LookResponse struct {
	Look    *domain.OutfitRequest `json:"look"`
	Results domain.MatchResult    `json:"results"`
	Source  string                `json:"source"` // "LLM" or "Cache"
}

// BuildLook resolves the structured outfit for the query (from cache or the
// LLM) and matches it against the catalog snapshot. Matching itself never
// fails; an empty Results map means the catalog had nothing for the look.
func (s *LookService) BuildLook(ctx context.Context, request *LookRequest) (*LookResponse, error) {
	if request == nil || strings.TrimSpace(request.Query) == "" {
		return nil, domain.ErrInvalidRequest
	}

	allowUnisex := true
	if request.AllowUnisex != nil {
		allowUnisex = *request.AllowUnisex
	}

	source := "Cache"
	look, err := s.getCachedLook(ctx, s.generateCacheKey(request.Query))
	if err != nil || look == nil {
		source = "LLM"
		look, err = s.client.GenerateLook(ctx, request.Query)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrLookUnavailable, err)
		}

		if err := s.setCachedLook(ctx, s.generateCacheKey(request.Query), look); err != nil {
			log.Warn().Err(err).Msg("look cache write failed")
		}
	}

	results := s.filter.FilterCatalog(s.catalog.Rows(), look, request.MaxPerItem, allowUnisex)

	return &LookResponse{
		Look:    look,
		Results: results,
		Source:  source,
	}, nil
}

// generateCacheKey creates a normalized cache key from the user query.
// Format: "look:{normalized_query}"
func (s *LookService) generateCacheKey(query string) string {
	return fmt.Sprintf("look:%s", normalizeForCacheKey(query))
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// getCachedLook retrieves a structured look from cache. The cache stores
// JSON round-tripped values, so decode goes through json again.
func (s *LookService) getCachedLook(ctx context.Context, key string) (*domain.OutfitRequest, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}

	var look domain.OutfitRequest
	if err := json.Unmarshal(raw, &look); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return &look, nil
}

// setCachedLook stores a structured look in cache
func (s *LookService) setCachedLook(ctx context.Context, key string, look *domain.OutfitRequest) error {
	return s.cache.Set(ctx, key, look, s.cacheTTL)
}
