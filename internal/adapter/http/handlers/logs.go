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

type LogHandler struct {
	logService ports.LogService
}

func NewLogHandler(logService ports.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

func (h *LogHandler) ListTaskLogs(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidPagination)
		return
	}
	page := validation.BuildPage(query)

	batch, err := h.logService.GetTaskActionLogBatch(c.Request.Context(), page.ContinuationToken, page.Take, page.Descending)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListLogs, nil)
		return
	}

	c.JSON(http.StatusOK, mapper.ToLogEntryBatch(batch))
}

func (h *LogHandler) ListLogsByTask(c *gin.Context) {
	taskID, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidPagination)
		return
	}
	page := validation.BuildPage(query)

	batch, err := h.logService.GetTaskActionLogBatchByTask(c.Request.Context(), taskID, page.ContinuationToken, page.Take, page.Descending)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListLogs, nil, zap.Stringer("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToLogEntryBatch(batch))
}
