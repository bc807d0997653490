package entities

import "time"

// PersistenceRecord is what a durable sink stores for every saved entity.
//
// Storage model:
//   - PK: id (uuid)
//   - description: the entity's String() rendering
//   - connection_tag: the shared connection the save went through
type PersistenceRecord struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	ConnectionTag string    `json:"connection_tag"`
	RecordedAt    time.Time `json:"recorded_at"`
}
