package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/paging"
	"todolist/internal/core/ports"
)

const (
	DefaultAuditWriteTimeout = 2 * time.Second

	auditBreakerName           = "audit-log"
	auditBreakerTripFailures   = 5
	auditBreakerOpenTimeout    = 30 * time.Second
	auditBreakerCountsInterval = time.Minute
)

type LogService struct {
	logRepository ports.LogRepository
	writeTimeout  time.Duration
	breaker       *gobreaker.CircuitBreaker
}

func NewLogService(logRepository ports.LogRepository, writeTimeout time.Duration) *LogService {
	if writeTimeout <= 0 {
		writeTimeout = DefaultAuditWriteTimeout
	}

	return &LogService{
		logRepository: logRepository,
		writeTimeout:  writeTimeout,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        auditBreakerName,
			MaxRequests: 1,
			Interval:    auditBreakerCountsInterval,
			Timeout:     auditBreakerOpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= auditBreakerTripFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				zap.L().Warn("audit log breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		}),
	}
}

// LogTaskAction appends an audit entry. The write outlives the caller's
// cancellation but is bounded by the service write timeout; failures are
// logged and dropped.
func (s *LogService) LogTaskAction(ctx context.Context, action domain.TaskAction, entityID *uuid.UUID, entityType string, payload *string) {
	// Version 7 ids sort in creation order, breaking ties between entries
	// written in the same millisecond.
	id, err := uuid.NewV7()
	if err != nil {
		zap.L().Warn("failed to generate audit entry id", zap.String("action", string(action)), zap.Error(err))
		return
	}

	entry := domain.LogEntry{
		ID:        id,
		Action:    action,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	}
	if entityID != nil {
		entity := *entityID
		entry.EntityID = &entity
	}
	if entityType != "" {
		entry.EntityType = &entityType
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
	defer cancel()

	_, err = s.breaker.Execute(func() (interface{}, error) {
		return nil, s.logRepository.Insert(writeCtx, entry)
	})
	if err != nil {
		fields := []zap.Field{
			zap.String("action", string(action)),
			zap.Stringer("log_id", entry.ID),
			zap.Error(err),
		}
		if entityID != nil {
			fields = append(fields, zap.Stringer("entity_id", *entityID))
		}
		zap.L().Warn("failed to write audit entry", fields...)
	}
}

func (s *LogService) GetTaskActionLogBatch(ctx context.Context, continuationToken string, take int, descending bool) (domain.Batch[domain.LogEntry], error) {
	cursor, err := paging.Parse(continuationToken, take)
	if err != nil {
		return domain.Batch[domain.LogEntry]{}, err
	}

	entries, err := s.logRepository.GetBatchByEntityType(ctx, domain.TaskEntityType, cursor.Offset, cursor.Take, descending)
	if err != nil {
		return domain.Batch[domain.LogEntry]{}, repositoryError("get task action log batch", err)
	}

	return paging.NewBatch(cursor, entries), nil
}

func (s *LogService) GetTaskActionLogBatchByTask(ctx context.Context, taskID uuid.UUID, continuationToken string, take int, descending bool) (domain.Batch[domain.LogEntry], error) {
	cursor, err := paging.Parse(continuationToken, take)
	if err != nil {
		return domain.Batch[domain.LogEntry]{}, err
	}

	entries, err := s.logRepository.GetBatchByEntity(ctx, taskID, cursor.Offset, cursor.Take, descending)
	if err != nil {
		return domain.Batch[domain.LogEntry]{}, repositoryError("get task action log batch by task", err)
	}

	return paging.NewBatch(cursor, entries), nil
}

// AuditLogState reports the audit breaker state: closed, half-open or open.
func (s *LogService) AuditLogState() string {
	return s.breaker.State().String()
}

var _ ports.LogService = (*LogService)(nil)
