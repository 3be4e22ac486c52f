package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todolist/internal/adapter/http/middleware"
	"todolist/internal/core/domain"
	"todolist/pkg/apierrors"
)

// clientErrors maps input and lookup failures to their status and message.
// Order matters: specific InvalidInput kinds come before the generic one.
var clientErrors = []struct {
	target error
	status int
	msgKey string
}{
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrInvalidHierarchyBinding, http.StatusBadRequest, apierrors.MsgInvalidHierarchyBinding},
	{domain.ErrInvalidContinuationToken, http.StatusBadRequest, apierrors.MsgInvalidContinuationToken},
	{domain.ErrInvalidTake, http.StatusBadRequest, apierrors.MsgInvalidTake},
	{domain.ErrInvalidSortField, http.StatusBadRequest, apierrors.MsgInvalidSortField},
	{domain.ErrInvalidSearchPhrase, http.StatusBadRequest, apierrors.MsgInvalidSearchPhrase},
	{domain.ErrInvalidInput, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload},
}

func abortWithError(c *gin.Context, status int, msgKey string, templateData ...map[string]any) {
	lang := middleware.GetLang(c)
	c.AbortWithStatusJSON(status, apierrors.CreateError(status, msgKey, lang, templateData...))
}

// respondServiceError writes the error envelope for a service failure. Storage
// failures are logged and answered with failMsgKey.
func respondServiceError(c *gin.Context, err error, failMsgKey string, templateData map[string]any, fields ...zap.Field) {
	for _, known := range clientErrors {
		if errors.Is(err, known.target) {
			abortWithError(c, known.status, known.msgKey, templateData)
			return
		}
	}

	_ = c.Error(err)
	zap.L().Error("request failed", append(fields, zap.String("message_id", failMsgKey), zap.Error(err))...)
	abortWithError(c, http.StatusInternalServerError, failMsgKey)
}
