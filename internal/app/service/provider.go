package service

import (
	"time"

	"todolist/internal/core/ports"
)

// Provider wires the services once at startup. The task service shares the
// provider's log service.
type Provider struct {
	taskService *TaskService
	logService  *LogService
}

func NewProvider(taskRepository ports.TaskRepository, logRepository ports.LogRepository, auditWriteTimeout time.Duration) *Provider {
	logService := NewLogService(logRepository, auditWriteTimeout)

	return &Provider{
		taskService: NewTaskService(taskRepository, logService),
		logService:  logService,
	}
}

func (p *Provider) TaskService() *TaskService {
	return p.taskService
}

func (p *Provider) LogService() *LogService {
	return p.logService
}
