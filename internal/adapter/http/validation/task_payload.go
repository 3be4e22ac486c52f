package validation

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
	"todolist/internal/core/paging"
)

var ErrInvalidTaskID = errors.New("invalid task id")

// RegisterValidators adds the task enum tags to gin's binding validator.
func RegisterValidators() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}

	if err := engine.RegisterValidation("task_priority", func(fl validator.FieldLevel) bool {
		return domain.TaskPriority(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}

	return engine.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return domain.TaskStatus(fl.Field().String()).IsValid()
	})
}

func ParseTaskID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidTaskID
	}
	return id, nil
}

func BuildTaskDetails(req dto.UpsertTaskRequest) domain.TaskDetails {
	return domain.TaskDetails{
		Summary:     req.Summary,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    domain.TaskPriority(req.Priority),
		Status:      domain.TaskStatus(req.Status),
	}
}

type Page struct {
	Take              int
	ContinuationToken string
	SortBy            string
	Descending        bool
}

func BuildPage(query dto.PaginationQuery) Page {
	page := Page{
		Take:              paging.DefaultTake,
		ContinuationToken: query.ContinuationToken,
		SortBy:            query.SortBy,
	}

	if query.Take != nil {
		page.Take = *query.Take
	}
	if page.SortBy == "" {
		page.SortBy = query.OrderBy
	}

	switch {
	case query.Descending != nil:
		page.Descending = *query.Descending
	case query.DescendingSort != nil:
		page.Descending = *query.DescendingSort
	}

	return page
}
