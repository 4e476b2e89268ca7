package repository

import "context"

// Capabilities is the deployment's effective identity/chat surface, probed
// once from the schema at startup and intersected with configuration. It
// replaces per-request information_schema reflection.
type Capabilities struct {
	// Email is true when users.email exists and email lookups are enabled.
	Email bool
	// ExternalUID is true when users.firebase_uid exists.
	ExternalUID bool
	// Chat is true when the chat_rooms and messages tables both exist.
	Chat bool
}

// SchemaReport is the schema-health debug payload: presence of every table
// and optional column the application knows about.
type SchemaReport struct {
	Tables  map[string]bool `json:"tables"`
	Columns map[string]bool `json:"columns"`
}

type SchemaRepository interface {
	Health(ctx context.Context) (*SchemaReport, error)
}
