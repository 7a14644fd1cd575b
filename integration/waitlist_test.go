package integration

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/akeren/launchlist/config"
	"github.com/akeren/launchlist/config/router"
	"github.com/akeren/launchlist/domain"
	"github.com/akeren/launchlist/internal/log"
	"github.com/akeren/launchlist/internal/models"
	"github.com/akeren/launchlist/pkg/constants"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testAdminKey = "test-admin-key"

type WaitlistAPITestSuite struct {
	suite.Suite
	db        *gorm.DB
	server    *httptest.Server
	baseURL   string
	logger    *log.Logger
	appConfig *config.ApplicationConfig
}

func (s *WaitlistAPITestSuite) SetupSuite() {
	var err error
	s.db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared&_busy_timeout=10000"), &gorm.Config{})
	s.Require().NoError(err)

	// SQLite serializes writes at the database level. Limiting to one open
	// connection prevents "database is locked" errors under concurrent load.
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	err = s.db.AutoMigrate(models.ModelRegistry...)
	s.Require().NoError(err)

	s.logger = log.NewLoggerWithJSONOutput()

	s.appConfig = &config.ApplicationConfig{
		DB:     s.db,
		Logger: s.logger,
		Config: &config.AppConfig{
			AdminKey:       testAdminKey,
			RequestTimeout: 30 * time.Second,
		},
	}

	s.appConfig.RouterService = router.CreateRouterService(s.logger, &router.RouterConfig{
		RequestTimeout: 30 * time.Second,
	})

	domain.SetupCoreDomain(s.appConfig)

	s.server = httptest.NewServer(s.appConfig.RouterService.GetEngine())
	s.baseURL = s.server.URL
}

func (s *WaitlistAPITestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		sqlDB.Close()
	}
}

func (s *WaitlistAPITestSuite) SetupTest() {
	s.db.Exec("DELETE FROM waitlist_entries")
}

// Helper methods

func (s *WaitlistAPITestSuite) signup(payload map[string]any) (int, map[string]any) {
	body, _ := json.Marshal(payload)
	resp, err := http.Post(s.baseURL+"/api/waitlist", "application/json", bytes.NewBuffer(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]any
	json.NewDecoder(resp.Body).Decode(&response)
	return resp.StatusCode, response
}

func (s *WaitlistAPITestSuite) adminGet(path string, key string) *http.Response {
	req, err := http.NewRequest(http.MethodGet, s.baseURL+path, nil)
	s.Require().NoError(err)
	if key != "" {
		req.Header.Set(constants.AdminKeyHeader, key)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	return resp
}

// Tests

func (s *WaitlistAPITestSuite) TestSignup() {
	status, response := s.signup(map[string]any{"email": "alice@example.com"})

	s.Equal(http.StatusCreated, status)
	s.Equal(true, response["success"])
	s.Equal("You're on the waitlist", response["message"])
	s.Equal(float64(1), response["count"])
}

func (s *WaitlistAPITestSuite) TestSignupNormalizesEmail() {
	status, _ := s.signup(map[string]any{"email": "  User@Example.COM "})
	s.Equal(http.StatusCreated, status)

	var entry models.WaitlistEntry
	s.Require().NoError(s.db.First(&entry).Error)
	s.Equal("user@example.com", entry.Email)
	s.Equal("website", entry.Source)
}

func (s *WaitlistAPITestSuite) TestSignupDuplicateConflicts() {
	status, _ := s.signup(map[string]any{"email": "bob@example.com"})
	s.Equal(http.StatusCreated, status)

	// A differently cased variant of the same address must also conflict.
	status, response := s.signup(map[string]any{"email": "Bob@Example.com"})
	s.Equal(http.StatusConflict, status)
	s.Equal(false, response["success"])
	s.Contains(response["message"], "already on the waitlist")

	var count int64
	s.db.Model(&models.WaitlistEntry{}).Count(&count)
	s.Equal(int64(1), count)
}

func (s *WaitlistAPITestSuite) TestSignupMissingEmail() {
	status, response := s.signup(map[string]any{"source": "twitter"})
	s.Equal(http.StatusBadRequest, status)
	s.Equal(false, response["success"])
}

func (s *WaitlistAPITestSuite) TestSignupMalformedEmail() {
	status, response := s.signup(map[string]any{"email": "not-an-email"})
	s.Equal(http.StatusBadRequest, status)
	s.Equal(false, response["success"])

	var count int64
	s.db.Model(&models.WaitlistEntry{}).Count(&count)
	s.Equal(int64(0), count)
}

func (s *WaitlistAPITestSuite) TestSignupKeepsCustomSource() {
	status, _ := s.signup(map[string]any{"email": "carol@example.com", "source": "producthunt"})
	s.Equal(http.StatusCreated, status)

	var entry models.WaitlistEntry
	s.Require().NoError(s.db.First(&entry).Error)
	s.Equal("producthunt", entry.Source)
}

func (s *WaitlistAPITestSuite) TestCountIsPublic() {
	s.signup(map[string]any{"email": "one@example.com"})
	s.signup(map[string]any{"email": "two@example.com"})

	resp, err := http.Get(s.baseURL + "/api/waitlist/count")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]any
	json.NewDecoder(resp.Body).Decode(&response)
	s.Equal(true, response["success"])
	s.Equal(float64(2), response["count"])
}

func (s *WaitlistAPITestSuite) TestListRequiresAdminKey() {
	resp := s.adminGet("/api/waitlist/all", "")
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	var response map[string]any
	json.NewDecoder(resp.Body).Decode(&response)
	s.Equal(false, response["success"])
	s.Equal("Unauthorized", response["message"])

	_, hasData := response["data"]
	s.False(hasData)
}

func (s *WaitlistAPITestSuite) TestListRejectsWrongAdminKey() {
	resp := s.adminGet("/api/waitlist/all", testAdminKey+"x")
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *WaitlistAPITestSuite) TestListReturnsNewestFirst() {
	s.signup(map[string]any{"email": "first@example.com"})
	s.signup(map[string]any{"email": "second@example.com"})

	// Force distinct timestamps so ordering is deterministic.
	s.db.Model(&models.WaitlistEntry{}).
		Where("email = ?", "first@example.com").
		Update("created_at", time.Now().UTC().Add(-time.Hour))

	resp := s.adminGet("/api/waitlist/all", testAdminKey)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]any
	json.NewDecoder(resp.Body).Decode(&response)
	data := response["data"].([]any)
	s.Require().Len(data, 2)
	s.Equal("second@example.com", data[0].(map[string]any)["email"])
	s.Equal("first@example.com", data[1].(map[string]any)["email"])
}

func (s *WaitlistAPITestSuite) TestExportCSV() {
	s.signup(map[string]any{"email": "export@example.com", "source": "newsletter"})

	resp := s.adminGet("/api/waitlist/export", testAdminKey)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Type"), "text/csv")
	s.Contains(resp.Header.Get("Content-Disposition"), `filename="waitlist.csv"`)

	records, err := csv.NewReader(resp.Body).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal([]string{"email", "created_at", "source", "ip_address"}, records[0])
	s.Equal("export@example.com", records[1][0])
	s.Equal("newsletter", records[1][2])
}

func (s *WaitlistAPITestSuite) TestExportRequiresAdminKey() {
	resp := s.adminGet("/api/waitlist/export", "")
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.NotContains(resp.Header.Get("Content-Type"), "text/csv")
}

func (s *WaitlistAPITestSuite) TestHealthEndpoint() {
	resp, err := http.Get(s.baseURL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]any
	json.NewDecoder(resp.Body).Decode(&response)
	s.Equal("ok", response["status"])
}

func (s *WaitlistAPITestSuite) TestReadinessEndpoint() {
	resp, err := http.Get(s.baseURL + "/readiness")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]any
	json.NewDecoder(resp.Body).Decode(&response)
	data := response["data"].(map[string]any)
	s.Equal(float64(1), data["database"])
	s.Equal(float64(0), data["cache"])
}

func (s *WaitlistAPITestSuite) TestSignupIsIdempotentAcrossWhitespace() {
	status, _ := s.signup(map[string]any{"email": "dup@example.com"})
	s.Equal(http.StatusCreated, status)

	status, _ = s.signup(map[string]any{"email": " dup@example.com "})
	s.Equal(http.StatusConflict, status)
}

func TestWaitlistAPISuite(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}

	suite.Run(t, new(WaitlistAPITestSuite))
}
