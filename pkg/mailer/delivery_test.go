package mailer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

type sentMail struct{ to, subject, text, html string }

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, text, html})
	return nil
}

func discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestDecode(t *testing.T) {
	job, err := Decode([]byte(`{"id":"j1","channel":"EMAIL","recipient":"ana@example.com","title":"Hola"}`))
	if err != nil || job.Title != "Hola" || !job.IsEmail() {
		t.Fatalf("decode = %+v, %v", job, err)
	}
	for name, body := range map[string]string{
		"not json":          `{`,
		"missing recipient": `{"id":"j1","channel":"SMS"}`,
		"missing channel":   `{"id":"j1","recipient":"x"}`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode([]byte(body)); !errors.Is(err, ErrMalformedJob) {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestHandle(t *testing.T) {
	ctx := context.Background()
	email := NotificationJob{ID: "j1", Channel: "EMAIL", Recipient: "ana@example.com", Title: "T", Body: "B", HTML: "<p>B</p>"}

	t.Run("email is sent", func(t *testing.T) {
		s := &fakeSender{}
		if err := (Delivery{Mail: s, Logger: discard()}).Handle(ctx, email); err != nil {
			t.Fatalf("handle: %v", err)
		}
		if len(s.sent) != 1 || s.sent[0] != (sentMail{"ana@example.com", "T", "B", "<p>B</p>"}) {
			t.Fatalf("sent = %+v", s.sent)
		}
	})
	t.Run("dry run skips sender", func(t *testing.T) {
		s := &fakeSender{}
		if err := (Delivery{Mail: s, Logger: discard(), DryRun: true}).Handle(ctx, email); err != nil || len(s.sent) != 0 {
			t.Fatalf("err=%v sent=%d", err, len(s.sent))
		}
	})
	t.Run("other channels are not mailed", func(t *testing.T) {
		s := &fakeSender{}
		job := NotificationJob{ID: "j2", Channel: "PUSH", Recipient: "device-1"}
		if err := (Delivery{Mail: s, Logger: discard()}).Handle(ctx, job); err != nil || len(s.sent) != 0 {
			t.Fatalf("err=%v sent=%d", err, len(s.sent))
		}
	})
	t.Run("bad recipient is permanent", func(t *testing.T) {
		job := email
		job.Recipient = "user-1"
		if err := (Delivery{Mail: &fakeSender{}, Logger: discard()}).Handle(ctx, job); !errors.Is(err, ErrMalformedJob) {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("send failure is retryable", func(t *testing.T) {
		err := (Delivery{Mail: &fakeSender{err: errors.New("timeout")}, Logger: discard()}).Handle(ctx, email)
		if err == nil || errors.Is(err, ErrMalformedJob) {
			t.Fatalf("err = %v", err)
		}
	})
}
