package mapper

import (
	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

func ToLogEntry(entry domain.LogEntry) dto.LogEntry {
	return dto.LogEntry{
		ID:         entry.ID,
		Action:     string(entry.Action),
		Timestamp:  entry.Timestamp,
		EntityID:   entry.EntityID,
		EntityType: entry.EntityType,
		Payload:    entry.Payload,
	}
}

func ToLogEntryBatch(batch domain.Batch[domain.LogEntry]) dto.Batch[dto.LogEntry] {
	items := make([]dto.LogEntry, 0, len(batch.Items))
	for _, entry := range batch.Items {
		items = append(items, ToLogEntry(entry))
	}
	return dto.Batch[dto.LogEntry]{Entities: items, ContinuationToken: batch.ContinuationToken}
}
