package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akeren/launchlist/internal/log"
)

func mountTestController(rs *RouterService) {
	ctrl := NewRESTController("TestController", "/", func(rs *RouterService, c *RESTController) {
		rs.AddGetHandler(c, "ip", func(ctx *RequestContext) *ServiceResult {
			return OKResult(ctx.ClientIP(), "ok")
		})

		rs.AddPostHandler(c, "echo", func(ctx *RequestContext) *ServiceResult {
			var payload map[string]any
			if err := ctx.ShouldBindJSON(&payload); err != nil {
				return BadRequestResult("bad", nil)
			}
			return OKResult(payload, "ok")
		})
	})

	rs.MountController(ctrl)
}

func newTestRouterService(t *testing.T) *RouterService {
	t.Helper()

	logger := log.NewLoggerWithJSONOutput()
	return CreateRouterService(logger, &RouterConfig{
		RequestTimeout: 5 * time.Second,
	})
}

func TestTrustedProxies_DisabledByDefault(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")

	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	req.Header.Set("X-Forwarded-For", "1.1.1.1")

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Data    string `json:"data"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Data != "10.0.0.2" {
		t.Fatalf("expected ClientIP to use RemoteAddr when trusted proxies disabled; got %q", resp.Data)
	}
}

func TestTrustedProxies_StarTrustsForwardedFor(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "*")

	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	req.Header.Set("X-Forwarded-For", "1.1.1.1")

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Data    string `json:"data"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Data != "1.1.1.1" {
		t.Fatalf("expected ClientIP to use X-Forwarded-For when trusted proxies enabled; got %q", resp.Data)
	}
}

func TestMaxBodySize_Returns413(t *testing.T) {
	t.Setenv("MAX_REQUEST_BODY_BYTES", "10")

	rs := newTestRouterService(t)
	mountTestController(rs)

	body := bytes.Repeat([]byte{'a'}, 50)
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
	}
}

func TestEnvelope_OmitsUnsetDataAndCount(t *testing.T) {
	rs := newTestRouterService(t)

	ctrl := NewRESTController("EnvelopeController", "/envelope", func(rs *RouterService, c *RESTController) {
		rs.AddGetHandler(c, "bare", func(ctx *RequestContext) *ServiceResult {
			return OKResult(nil, "ok")
		})
		rs.AddGetHandler(c, "counted", func(ctx *RequestContext) *ServiceResult {
			return OKResult(nil, "ok").WithCount(7)
		})
	})
	rs.MountController(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/envelope/bare", nil)
	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	var bare map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &bare); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, found := bare["data"]; found {
		t.Fatalf("expected no data field, got %v", bare)
	}
	if _, found := bare["count"]; found {
		t.Fatalf("expected no count field, got %v", bare)
	}

	req = httptest.NewRequest(http.MethodGet, "/envelope/counted", nil)
	w = httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	var counted map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &counted); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if counted["count"] != float64(7) {
		t.Fatalf("expected count 7, got %v", counted["count"])
	}
}
