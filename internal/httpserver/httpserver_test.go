package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-fact-skill/internal/fact/repository/memory"
	factUC "voice-fact-skill/internal/fact/usecase"
	"voice-fact-skill/internal/httpserver"
	"voice-fact-skill/internal/middleware"
	skillUC "voice-fact-skill/internal/skill/usecase"
	"voice-fact-skill/pkg/log"
	"voice-fact-skill/pkg/response"
)

const appID = "amzn1.echo-sdk-ams.app.test-skill"

func newServer(t *testing.T) *httpserver.HTTPServer {
	t.Helper()
	return newServerWith(t, middleware.SecurityConfig{}, nil)
}

func newServerWith(t *testing.T, security middleware.SecurityConfig, trustedProxies []string) *httpserver.HTTPServer {
	t.Helper()
	l := log.NewNop()
	uc, err := skillUC.New(l, appID, factUC.New(memory.NewDefault(), l))
	if err != nil {
		t.Fatalf("skill usecase: %v", err)
	}

	srv, err := httpserver.New(l, httpserver.Config{
		Logger:         l,
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "development",
		SkillUseCase:   uc,
		WebhookPath:    "/webhook/skill",
		Security:       security,
		TrustedProxies: trustedProxies,
	})
	if err != nil {
		t.Fatalf("httpserver.New: %v", err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	l := log.NewNop()
	cases := []struct {
		name string
		cfg  httpserver.Config
	}{
		{"Missing port", httpserver.Config{Mode: gin.TestMode, WebhookPath: "/w"}},
		{"Missing mode", httpserver.Config{Port: 8080, WebhookPath: "/w"}},
		{"Missing skill", httpserver.Config{Port: 8080, Mode: gin.TestMode, WebhookPath: "/w"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := httpserver.New(l, tc.cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}

	t.Run("Invalid trusted proxy", func(t *testing.T) {
		uc, err := skillUC.New(l, appID, factUC.New(memory.NewDefault(), l))
		if err != nil {
			t.Fatalf("skill usecase: %v", err)
		}
		_, err = httpserver.New(l, httpserver.Config{
			Port:           8080,
			Mode:           gin.TestMode,
			SkillUseCase:   uc,
			WebhookPath:    "/w",
			TrustedProxies: []string{"not-an-ip"},
		})
		if err == nil {
			t.Errorf("expected trusted proxy error")
		}
	})
}

func TestWebhookAllowlist(t *testing.T) {
	security := middleware.SecurityConfig{AllowedIPs: []string{"10.0.0.0/8"}}
	body := `{"version":"1.0","session":{"application":{"applicationId":"` + appID + `"}},"request":{"type":"LaunchRequest"}}`

	send := func(srv *httpserver.HTTPServer, remote, forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/webhook/skill", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderForwarded, forwarded)
		req.RemoteAddr = remote + ":40000"
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w.Code
	}

	t.Run("No trusted proxies", func(t *testing.T) {
		srv := newServerWith(t, security, nil)
		if code := send(srv, "203.0.113.9", "10.1.2.3"); code != http.StatusForbidden {
			t.Errorf("spoofed forwarding header: expected 403, got %d", code)
		}
		if code := send(srv, "10.1.2.3", ""); code != http.StatusOK {
			t.Errorf("allowed peer: expected 200, got %d", code)
		}
	})

	t.Run("Trusted proxy", func(t *testing.T) {
		srv := newServerWith(t, security, []string{"192.0.2.0/24"})
		if code := send(srv, "192.0.2.1", "10.1.2.3"); code != http.StatusOK {
			t.Errorf("allowed client via proxy: expected 200, got %d", code)
		}
		if code := send(srv, "203.0.113.9", "10.1.2.3"); code != http.StatusForbidden {
			t.Errorf("header from untrusted peer: expected 403, got %d", code)
		}
	})
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t)

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			data, _ := resp.Data.(map[string]any)
			if data["status"] != status || data["service"] != httpserver.ServiceName {
				t.Errorf("unexpected payload %v", resp.Data)
			}
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	srv := newServer(t)

	body := `{"version":"1.0","session":{"application":{"applicationId":"` + appID + `"}},"request":{"type":"LaunchRequest"}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/skill", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("webhook: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `skill_requests_total{intent="",request_type="LaunchRequest",result="ok"} 1`) {
		t.Errorf("launch not counted:\n%s", w.Body.String())
	}
}
