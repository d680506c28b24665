// Package history persists generated-card records for sharing and recall.
//
// Every successful compose run produces a [Record]: the inputs, the
// final message, and the serialized layout plan. Records back the share
// links served by the HTTP API and the `cardfold history` command.
//
// The [Store] interface has two implementations:
//   - FileStore: JSON files in a config directory, for CLI usage
//   - MongoStore: MongoDB collection, for multi-instance serving
package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Record is a single generated card.
type Record struct {
	ID            string          `json:"id" bson:"_id"`
	Occasion      string          `json:"occasion" bson:"occasion"`
	ArtStyle      string          `json:"art_style" bson:"art_style"`
	Description   string          `json:"description" bson:"description"`
	Message       string          `json:"message,omitempty" bson:"message,omitempty"`
	ArtworkPrompt string          `json:"artwork_prompt,omitempty" bson:"artwork_prompt,omitempty"`
	PageFormat    string          `json:"page_format" bson:"page_format"`
	Style         string          `json:"style" bson:"style"`
	Plan          json.RawMessage `json:"plan" bson:"plan"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
}

// Store is the interface for history storage backends.
type Store interface {
	// Get retrieves a record by ID.
	// Returns nil, nil if the record doesn't exist.
	Get(ctx context.Context, id string) (*Record, error)

	// Put stores a record, replacing any existing one with the same ID.
	Put(ctx context.Context, rec *Record) error

	// List returns the most recent records, newest first.
	// A limit of 0 means no limit.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases any backend resources.
	Close() error
}

// New creates a record with a fresh ID and creation timestamp.
func New() *Record {
	return &Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}
