package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newGuardedRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guarded", AdminToken(token, zap.NewNop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func request(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdminTokenRejectsBadCredentials(t *testing.T) {
	r := newGuardedRouter("s3cret")

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic s3cret"},
		{"wrong token", "Bearer nope"},
		{"token as prefix", "Bearer s3cret-extra"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := request(r, tc.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Invalid or missing token") {
				t.Fatalf("body = %s", w.Body.String())
			}
		})
	}
}

func TestAdminTokenAcceptsBearerToken(t *testing.T) {
	r := newGuardedRouter("s3cret")
	w := request(r, "Bearer s3cret")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAdminTokenOpenWhenUnconfigured(t *testing.T) {
	r := newGuardedRouter("")
	w := request(r, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 when no token configured", w.Code)
	}
}
