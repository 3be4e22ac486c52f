package dto

import "github.com/google/uuid"

type LogEntry struct {
	ID         uuid.UUID  `json:"id"`
	Action     string     `json:"action"`
	Timestamp  int64      `json:"timestamp"`
	EntityID   *uuid.UUID `json:"entity_id"`
	EntityType *string    `json:"entity_type"`
	Payload    *string    `json:"payload"`
}
