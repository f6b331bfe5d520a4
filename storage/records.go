// Package storage persists workflow results. The RecordStore interface
// is satisfied by both the Airtable client and the local sqlite store;
// the choice is made once at startup from configuration.
package storage

import "context"

// RecordStore creates records in a named table.
type RecordStore interface {
	// Create inserts one record and returns its id.
	Create(ctx context.Context, table string, fields map[string]any) (string, error)
	Close() error
}
