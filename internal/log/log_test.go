package log_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	applog "videobelajar/internal/log"
)

func capture(t *testing.T, fn func()) []map[string]any {
	t.Helper()
	var buf bytes.Buffer
	old := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(old)

	fn()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		out = append(out, m)
	}
	return out
}

func TestErrorEntryCarriesRequestContext(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/boom", func(c *fiber.Ctx) error {
		applog.Error(c, "course.list.fail", errors.New("Table 'courses' doesn't exist"), map[string]any{"id": "1"})
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	entries := capture(t, func() {
		if _, err := app.Test(httptest.NewRequest("GET", "/boom", nil)); err != nil {
			t.Fatal(err)
		}
	})
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e["level"] != "error" || e["action"] != "course.list.fail" || e["method"] != "GET" || e["path"] != "/boom" {
		t.Fatalf("unexpected entry %v", e)
	}
	if e["err"] != "Table 'courses' doesn't exist" {
		t.Fatalf("err missing: %v", e)
	}
	if rid, _ := e["req_id"].(string); rid == "" {
		t.Fatalf("req_id missing: %v", e)
	}
	if f, _ := e["fields"].(map[string]any); f["id"] != "1" {
		t.Fatalf("fields missing: %v", e)
	}
}

func TestAuditIgnoresLevel(t *testing.T) {
	if err := applog.SetLevel("error"); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = applog.SetLevel("info") }()

	entries := capture(t, func() {
		applog.Info(nil, "hidden", nil)
		applog.Audit(nil, "course.create", map[string]any{"id": 1})
	})
	if len(entries) != 1 || entries[0]["level"] != "audit" || entries[0]["action"] != "course.create" {
		t.Fatalf("unexpected entries %v", entries)
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := applog.SetLevel("loud"); err == nil {
		t.Fatal("expected error")
	}
}
