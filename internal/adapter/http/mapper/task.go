package mapper

import (
	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

func ToTaskBase(task domain.Task) dto.TaskBase {
	return dto.TaskBase{
		ID:       task.ID,
		Summary:  task.Summary,
		Priority: string(task.Priority),
		Status:   string(task.Status),
	}
}

func ToTaskBases(tasks []domain.Task) []dto.TaskBase {
	items := make([]dto.TaskBase, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskBase(task))
	}
	return items
}

func ToTaskDetailed(task domain.Task) dto.TaskDetailed {
	item := dto.TaskDetailed{
		TaskBase:   ToTaskBase(task),
		CreateDate: task.CreateDate.Unix(),
		DueDate:    task.DueDate.Unix(),
	}

	if task.RootTaskID != nil {
		value := *task.RootTaskID
		item.RootID = &value
	}

	return item
}

func ToTaskDetailedBatch(batch domain.Batch[domain.Task]) dto.Batch[dto.TaskDetailed] {
	items := make([]dto.TaskDetailed, 0, len(batch.Items))
	for _, task := range batch.Items {
		items = append(items, ToTaskDetailed(task))
	}
	return dto.Batch[dto.TaskDetailed]{Entities: items, ContinuationToken: batch.ContinuationToken}
}

func ToTaskFull(view domain.TaskView) dto.TaskFull {
	item := dto.TaskFull{
		TaskDetailed: ToTaskDetailed(view.Task),
		Subtasks:     ToTaskBases(view.Subtasks),
	}

	if view.Task.Description != nil {
		value := *view.Task.Description
		item.Description = &value
	}

	if view.RootTask != nil {
		root := ToTaskBase(*view.RootTask)
		item.RootTask = &root
	}

	return item
}

func ToTaskSearchBatch(batch domain.Batch[domain.TaskSearchResult]) dto.Batch[dto.TaskSearch] {
	items := make([]dto.TaskSearch, 0, len(batch.Items))
	for _, result := range batch.Items {
		items = append(items, dto.TaskSearch{
			ID:          result.ID,
			Summary:     result.Summary,
			Description: result.Description,
		})
	}
	return dto.Batch[dto.TaskSearch]{Entities: items, ContinuationToken: batch.ContinuationToken}
}
