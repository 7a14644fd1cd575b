package adminauth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akeren/launchlist/internal/log"
	"github.com/akeren/launchlist/pkg/constants"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(adminKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := log.NewLoggerWithJSONOutput()
	engine := gin.New()
	engine.GET("/guarded", Middleware(logger, adminKey), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
	})
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, headerValue string, setHeader bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if setHeader {
		req.Header.Set(constants.AdminKeyHeader, headerValue)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestMiddleware_AllowsMatchingKey(t *testing.T) {
	engine := newGuardedRouter("s3cret")

	w := doRequest(t, engine, "s3cret", true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddleware_RejectsBadKeys(t *testing.T) {
	engine := newGuardedRouter("s3cret")

	cases := map[string]struct {
		value     string
		setHeader bool
	}{
		"missing header":       {setHeader: false},
		"empty header":         {value: "", setHeader: true},
		"off by one character": {value: "s3creT", setHeader: true},
		"prefix of the key":    {value: "s3cre", setHeader: true},
		"key with suffix":      {value: "s3cret ", setHeader: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := doRequest(t, engine, tc.value, tc.setHeader)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.NotContains(t, body, "data")
		})
	}
}

func TestMiddleware_FailsClosedWithoutConfiguredKey(t *testing.T) {
	engine := newGuardedRouter("")

	w := doRequest(t, engine, "", true)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
