package factory

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func TestNewModuleLogger(t *testing.T) {
	logger := NewModuleLogger("abacatepay-client")
	if logger == nil {
		t.Fatal("expected logger")
	}
	entry, ok := logger.(*logrus.Entry)
	if !ok {
		t.Fatalf("expected *logrus.Entry, got %T", logger)
	}
	if entry.Data["module"] != "abacatepay-client" {
		t.Fatalf("unexpected module field: %v", entry.Data["module"])
	}
}

func TestLoggerWithContextAddsRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/v1/customer/list", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	logger := LoggerWithContext(NewModuleLogger("mock-api"), ctx)
	entry, ok := logger.(*logrus.Entry)
	if !ok {
		t.Fatalf("expected *logrus.Entry, got %T", logger)
	}
	if entry.Data["request_id"] != "req-123" {
		t.Fatalf("expected request id field, got %v", entry.Data["request_id"])
	}
}

func TestConfigureLoggingRejectsUnknownLevel(t *testing.T) {
	previous := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(previous) })

	if err := ConfigureLogging("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if err := ConfigureLogging("debug"); err != nil {
		t.Fatalf("expected debug level to be accepted, got %v", err)
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Fatalf("unexpected level: %s", logrus.GetLevel())
	}
}
