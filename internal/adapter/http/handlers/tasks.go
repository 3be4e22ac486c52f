package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/mapper"
	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListRootTasks(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidPagination)
		return
	}
	page := validation.BuildPage(query)

	batch, err := h.taskService.GetRootTaskBatch(c.Request.Context(), page.Take, page.ContinuationToken, page.SortBy, page.Descending)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListTask, map[string]any{"Field": page.SortBy})
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskDetailedBatch(batch))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	view, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailGetTask, nil, zap.Stringer("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskFull(view))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.UpsertTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	taskID, err := h.taskService.CreateTask(c.Request.Context(), validation.BuildTaskDetails(req))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateTask, nil)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTaskResponse{TaskID: taskID})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.UpsertTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	if err := h.taskService.UpdateTask(c.Request.Context(), taskID, validation.BuildTaskDetails(req)); err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateTask, nil, zap.Stringer("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) UpdateTaskRoot(c *gin.Context) {
	taskID, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.TaskRootChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	if err := h.taskService.UpdateTaskRoot(c.Request.Context(), taskID, req.RootID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateTaskRoot, nil, zap.Stringer("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteTask, nil, zap.Stringer("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) SearchTasks(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidPagination)
		return
	}
	page := validation.BuildPage(query)

	batch, err := h.taskService.SearchTasks(c.Request.Context(), c.Param("phrase"), page.Take, page.ContinuationToken)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailSearchTask, nil)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskSearchBatch(batch))
}
