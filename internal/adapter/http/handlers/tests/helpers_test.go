package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/handlers"
	"todolist/pkg/apierrors"
	"todolist/pkg/translator"
)

func newRouter(taskService *taskServiceMock, logService *logServiceMock) *gin.Engine {
	router := gin.New()
	httpadapter.RegisterRoutes(router,
		handlers.NewHealthHandler(nil, nil),
		handlers.NewTaskHandler(taskService),
		handlers.NewLogHandler(logService),
	)
	return router
}

func doRequest(router http.Handler, method, target, body, lang string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang == "" {
		lang = translator.LanguageEn
	}
	req.Header.Set("Accept-Language", lang)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, status, got.ErrDetails.Code)
	require.Equal(t, message, got.ErrDetails.Message)
}
