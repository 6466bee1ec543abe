package helpers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	tok, exp, err := m.GenerateAccessToken("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if exp.IsZero() {
		t.Fatalf("expiry not set")
	}
	claims, err := m.ParseAccessToken(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("UserID = %q", claims.UserID)
	}
}

func TestJWTRejects(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	tok, _, _ := m.GenerateAccessToken("user-1")

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other", time.Hour)
		if _, err := other.ParseAccessToken(tok); err == nil {
			t.Fatalf("expected signature error")
		}
	})
	t.Run("expired", func(t *testing.T) {
		later := NewJWTManager("secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		if _, err := later.ParseAccessToken(tok); !errors.Is(err, jwt.ErrTokenExpired) {
			t.Fatalf("err = %v, want expired", err)
		}
	})
	t.Run("missing user", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}})
		s, _ := raw.SignedString([]byte("secret"))
		if _, err := m.ParseAccessToken(s); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("err = %v, want ErrInvalidToken", err)
		}
	})
	t.Run("garbage", func(t *testing.T) {
		if _, err := m.ParseAccessToken("not-a-token"); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}

func TestNewLoggerFormats(t *testing.T) {
	var dev bytes.Buffer
	l := newLogger(&dev, "eventhub", "development")
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("development level = %v", l.GetLevel())
	}
	if !strings.Contains(dev.String(), "logger initialized") {
		t.Fatalf("missing init line: %q", dev.String())
	}

	var prod bytes.Buffer
	l = newLogger(&prod, "eventhub", "production")
	LogError(l, "publish failed", errors.New("boom"), logrus.Fields{"queue": "notifications"})
	out := prod.String()
	if !strings.Contains(out, `"error":"boom"`) || !strings.Contains(out, `"queue":"notifications"`) {
		t.Fatalf("json output missing fields: %q", out)
	}
}

func TestNilPublisherIsClosed(t *testing.T) {
	var p *RabbitPublisher
	if err := p.PublishJSON(context.Background(), map[string]string{"a": "b"}); !errors.Is(err, ErrRabbitClosed) {
		t.Fatalf("err = %v", err)
	}
	p.Close()
}
