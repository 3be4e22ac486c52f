package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "todolist/internal/adapter/db"
	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/validation"
	appservice "todolist/internal/app/service"
	"todolist/internal/config"
	"todolist/pkg/translator"
)

const translationFolder = "../../../../pkg/translator/translation"

// IntegrationSuiteBase runs the full HTTP stack against a fresh in-memory
// SQLite database per test.
type IntegrationSuiteBase struct {
	suite.Suite

	DB     *sqlx.DB
	router *gin.Engine
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
	s.Require().NoError(validation.RegisterValidators())
}

func (s *IntegrationSuiteBase) SetupTest() {
	db, err := dbadapter.ConnectDB(&config.Config{
		DbDriver:   dbadapter.DriverSQLite,
		SqlitePath: ":memory:",
	})
	s.Require().NoError(err)
	s.Require().NoError(dbadapter.Migrate(context.Background(), db))
	s.DB = db

	provider := appservice.NewProvider(
		dbadapter.NewTaskRepository(db),
		dbadapter.NewLogRepository(db),
		appservice.DefaultAuditWriteTimeout,
	)

	router := gin.New()
	httpadapter.RegisterRoutes(router,
		handlers.NewHealthHandler(db, provider.LogService()),
		handlers.NewTaskHandler(provider.TaskService()),
		handlers.NewLogHandler(provider.LogService()),
	)
	s.router = router
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}

func (s *IntegrationSuiteBase) Do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *IntegrationSuiteBase) DecodeJSON(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

func (s *IntegrationSuiteBase) RequireStatus(rec *httptest.ResponseRecorder, status int) {
	s.Require().Equal(status, rec.Code, rec.Body.String())
}
