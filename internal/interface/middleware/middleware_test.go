package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/eventhub/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	tok, _, err := jwt.GenerateAccessToken("user-7")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	r := gin.New()
	r.GET("/me", Auth(jwt), func(c *gin.Context) { c.String(http.StatusOK, UserID(c)) })

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := serve(r, req)
		if w.Code != http.StatusOK || w.Body.String() != "user-7" {
			t.Fatalf("got %d %q", w.Code, w.Body.String())
		}
	})
	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: tok})
		w := serve(r, req)
		if w.Code != http.StatusOK || w.Body.String() != "user-7" {
			t.Fatalf("got %d %q", w.Code, w.Body.String())
		}
	})
	t.Run("missing", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
	})
	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic "+tok)
		if w := serve(r, req); w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
	})
	t.Run("tampered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok+"x")
		if w := serve(r, req); w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Body.String() == "" || w.Header().Get(HeaderRequestID) != w.Body.String() {
		t.Fatalf("generated id not echoed: body=%q header=%q", w.Body.String(), w.Header().Get(HeaderRequestID))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	if w := serve(r, req); w.Body.String() != "abc-123" {
		t.Fatalf("incoming id not reused: %q", w.Body.String())
	}
}

func TestRealIPAndAllowFuncs(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		ip      string
		private bool
	}{
		{"cloudflare", map[string]string{"CF-Connecting-IP": "203.0.113.9", "X-Forwarded-For": "10.0.0.1"}, "203.0.113.9", false},
		{"forwarded", map[string]string{"X-Forwarded-For": "10.1.2.3, 203.0.113.1"}, "10.1.2.3", true},
		{"garbage header", map[string]string{"CF-Connecting-IP": "nope"}, "192.0.2.1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotIP string
			var gotPrivate bool
			r := gin.New()
			r.Use(RealIP())
			r.GET("/", func(c *gin.Context) {
				gotIP = ipFromCtx(c)
				gotPrivate = AllowPrivateIP()(c)
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			serve(r, req)
			if gotIP != tc.ip || gotPrivate != tc.private {
				t.Fatalf("ip=%q private=%v, want %q %v", gotIP, gotPrivate, tc.ip, tc.private)
			}
		})
	}
}

func TestReadsOnlyAndAnyOf(t *testing.T) {
	allow := AnyOf(nil, ReadsOnly())
	for method, want := range map[string]bool{
		http.MethodGet:  true,
		http.MethodHead: true,
		http.MethodPost: false,
		http.MethodPut:  false,
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(method, "/", nil)
		if got := allow(c); got != want {
			t.Fatalf("%s bypass = %v, want %v", method, got, want)
		}
	}
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	r := gin.New()
	r.POST("/", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for i := 0; i < 3; i++ {
		if w := serve(r, httptest.NewRequest(http.MethodPost, "/", nil)); w.Code != http.StatusNoContent {
			t.Fatalf("request %d status = %d", i, w.Code)
		}
	}
}

func TestKeyFuncs(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/payments", nil)
	c.Set(ctxRealIPKey, "198.51.100.4")

	if got := KeyByIP()(c); got != "rl:ip:198.51.100.4" {
		t.Fatalf("KeyByIP = %q", got)
	}
	if got := KeyByIPAndPath()(c); got != "rl:path:/api/payments:ip:198.51.100.4" {
		t.Fatalf("KeyByIPAndPath = %q", got)
	}
	if got := KeyByUserID()(c); got != "rl:user:anon:ip:198.51.100.4" {
		t.Fatalf("KeyByUserID anon = %q", got)
	}
	c.Set(CtxUserIDKey, "u1")
	if got := KeyByUserID()(c); got != "rl:user:u1" {
		t.Fatalf("KeyByUserID = %q", got)
	}
}
