package domain

import (
	"context"
	"time"
)

// LookClient defines the interface for the LLM stylist collaborator.
// Implementations retry a bounded number of times; GenerateLook substitutes a
// fixed fallback look rather than propagating a failure.
type LookClient interface {
	GenerateLook(ctx context.Context, userText string) (*OutfitRequest, error)
	ParseDirectorCommand(ctx context.Context, command string) (*DirectorCommand, error)
}

// LookCache defines the interface for caching generated looks.
type LookCache interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// FeedbackEntry is one saved user review of a generated look.
type FeedbackEntry struct {
	ID           string    `json:"id"`
	UserQuery    string    `json:"userQuery"`
	SelectedLook string    `json:"selectedLook"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FeedbackStore defines the interface for feedback persistence. The store is
// caller-owned and passed explicitly; the matching core never touches it.
type FeedbackStore interface {
	Append(ctx context.Context, entry FeedbackEntry) error
	All(ctx context.Context) ([]FeedbackEntry, error)
}
