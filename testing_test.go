package rafters

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
)

func TestTestRender_Success(t *testing.T) {
	views := NewViews().Register("widget_card", textView("widget_card"))

	result, err := TestRender(newWidgetCard(Settings{"title": "Hi", "color": "blue"}), views)
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}

	if result.TemplateName != "widget_card" {
		t.Errorf("TemplateName = %q", result.TemplateName)
	}
	if !result.HTMLContains("title=Hi") {
		t.Errorf("HTML does not contain expected content: %s", result.HTML)
	}
	if !result.HTMLContainsAll("widget_card:", "subtitle=a blue card") {
		t.Errorf("HTML missing content: %s", result.HTML)
	}
	if result.HTMLContainsAny("red", "green") {
		t.Errorf("HTML contains unexpected content: %s", result.HTML)
	}
	if !result.HasAttribute("title", "Hi") {
		t.Error("HasAttribute(title, Hi) = false")
	}
	if result.HasAttribute("title", "Bye") || result.HasAttribute("missing", nil) {
		t.Error("HasAttribute matched a wrong value")
	}
	if !result.IsOK() {
		t.Errorf("StatusCode = %d", result.StatusCode)
	}
}

func TestTestRender_ResolutionError(t *testing.T) {
	views := NewViews().Register("widget_card", textView("widget_card"))

	result, err := TestRender(newWidgetCard(Settings{"title": "Hi", "color": "green"}), views)
	if !IsInvalidSetting(err) {
		t.Fatalf("TestRender() error = %v, want ErrInvalidSetting", err)
	}
	if result != nil {
		t.Error("expected nil result on error")
	}
}

func TestTestRender_RenderError(t *testing.T) {
	expectedErr := errors.New("render failed")
	views := NewViews().Register("widget_card", func(*Attributes) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return expectedErr
		})
	})

	result, err := TestRender(newWidgetCard(Settings{"title": "Hi"}), views)
	if err != expectedErr {
		t.Errorf("error = %v, want %v", err, expectedErr)
	}
	if result != nil {
		t.Error("expected nil result on error")
	}
}

func TestTestRenderWithContext(t *testing.T) {
	type ctxKey string
	key := ctxKey("test-key")
	ctx := context.WithValue(context.Background(), key, "test-value")

	views := NewViews().Register("widget_card", func(*Attributes) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, ctx.Value(key).(string))
			return err
		})
	})

	result, err := TestRenderWithContext(ctx, newWidgetCard(Settings{"title": "Hi"}), views)
	if err != nil {
		t.Fatalf("TestRenderWithContext() error = %v", err)
	}
	if result.HTML != "test-value" {
		t.Errorf("HTML = %q, want test-value", result.HTML)
	}
}

func TestTestWrite(t *testing.T) {
	views := NewViews().Register("widget_card", textView("widget_card"))

	result, err := TestWrite(newWidgetCard(Settings{"title": "Hi"}), views, httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("TestWrite() error = %v", err)
	}
	if !result.IsOK() {
		t.Errorf("StatusCode = %d", result.StatusCode)
	}
	if !result.HasHeader("Content-Type", "text/html; charset=utf-8") {
		t.Errorf("Content-Type = %q", result.Headers.Get("Content-Type"))
	}
	if !result.HTMLContains("title=Hi") {
		t.Errorf("HTML = %q", result.HTML)
	}
}
