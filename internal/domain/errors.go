package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrLookUnavailable is returned when the LLM cannot produce a structured look
	ErrLookUnavailable = errors.New("look generation failed")

	// ErrCatalogLoad is returned when the catalog snapshot cannot be loaded
	ErrCatalogLoad = errors.New("catalog load failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrImageFetch is returned when an item image cannot be downloaded
	ErrImageFetch = errors.New("image download failed")

	// ErrPresetUnknown is returned when a scene preset name is not recognized
	ErrPresetUnknown = errors.New("unknown scene preset")
)
