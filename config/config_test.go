package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "PORT", "DB_NAME", "INVITE_CODE_CACHE_TTL", "RABBITMQ_NOTIFICATION_QUEUE", "MAIL_SEND_ENABLED"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppName != "eventhub" {
		t.Fatalf("AppName = %q", c.AppName)
	}
	if c.Port != "8080" {
		t.Fatalf("Port = %q", c.Port)
	}
	if c.InviteCodeCacheTTL != 720*time.Hour {
		t.Fatalf("InviteCodeCacheTTL = %v", c.InviteCodeCacheTTL)
	}
	if c.RabbitMQNotificationQueue != "notifications" {
		t.Fatalf("queue = %q", c.RabbitMQNotificationQueue)
	}
	if !c.MailSendEnabled {
		t.Fatalf("MailSendEnabled should default to true")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("INVITE_CODE_CACHE_TTL", "90m")
	t.Setenv("MAIL_SEND_ENABLED", "false")
	c := Load()
	if c.Port != "9090" {
		t.Fatalf("Port = %q", c.Port)
	}
	if c.DBMaxConns != 25 {
		t.Fatalf("DBMaxConns = %d", c.DBMaxConns)
	}
	if c.InviteCodeCacheTTL != 90*time.Minute {
		t.Fatalf("InviteCodeCacheTTL = %v", c.InviteCodeCacheTTL)
	}
	if c.MailSendEnabled {
		t.Fatalf("MailSendEnabled should be false")
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "many")
	t.Setenv("RATE_LIMIT_WINDOW", "soon")
	t.Setenv("HTTP_LOG_ENABLED", "perhaps")
	c := Load()
	if c.DBMaxConns != 10 {
		t.Fatalf("DBMaxConns = %d", c.DBMaxConns)
	}
	if c.RateLimitWindow != time.Minute {
		t.Fatalf("RateLimitWindow = %v", c.RateLimitWindow)
	}
	if c.HTTPLogEnabled {
		t.Fatalf("HTTPLogEnabled should fall back to false")
	}
}

func TestPostgresDSNAndOrigins(t *testing.T) {
	c := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "1", DBName: "d", DBSSLMode: "disable",
		CORSAllowedOrigins: " http://a.test, ,http://b.test "}
	if got, want := c.PostgresDSN(), "postgres://u:p@h:1/d?sslmode=disable"; got != want {
		t.Fatalf("PostgresDSN = %q, want %q", got, want)
	}
	o := c.CORSOrigins()
	if len(o) != 2 || o[0] != "http://a.test" || o[1] != "http://b.test" {
		t.Fatalf("CORSOrigins = %v", o)
	}
}
