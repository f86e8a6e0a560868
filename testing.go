package rafters

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
)

// TestResult holds the result of rendering a component for testing.
//
// Provides convenience methods for asserting on the resolved template name,
// attributes and HTML output.
type TestResult struct {
	TemplateName string
	Attributes   *Attributes
	HTML         string
	StatusCode   int
	Headers      http.Header
}

// TestRender resolves and renders a component against views.
//
// Use this for unit tests of components and their views. It runs the same
// path as Views.Render: template name, attributes, then the templ view.
//
//	result, err := rafters.TestRender(NewCard(settings), views)
//	if !result.HTMLContains("expected text") {
//	    t.Fatal("missing expected content")
//	}
func TestRender(r Renderable, views *Views) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), r, views)
}

// TestRenderWithContext renders a component with a custom context.
//
// Use this when views read values from context:
//
//	ctx := context.WithValue(context.Background(), "user", testUser)
//	result, err := rafters.TestRenderWithContext(ctx, comp, views)
func TestRenderWithContext(ctx context.Context, r Renderable, views *Views) (*TestResult, error) {
	attrs, err := r.Attributes()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := views.Render(ctx, &buf, r); err != nil {
		return nil, err
	}

	return &TestResult{
		TemplateName: r.TemplateName(),
		Attributes:   attrs,
		HTML:         buf.String(),
		StatusCode:   http.StatusOK,
		Headers:      make(http.Header),
	}, nil
}

// TestWrite renders a component through Views.Write with a recorded HTTP
// response, for testing handlers built on Write.
//
//	result, err := rafters.TestWrite(comp, views, httptest.NewRequest("GET", "/", nil))
func TestWrite(r Renderable, views *Views, req *http.Request) (*TestResult, error) {
	rec := httptest.NewRecorder()
	if err := views.Write(rec, req, r); err != nil {
		return nil, err
	}

	attrs, err := r.Attributes()
	if err != nil {
		return nil, err
	}

	return &TestResult{
		TemplateName: r.TemplateName(),
		Attributes:   attrs,
		HTML:         rec.Body.String(),
		StatusCode:   rec.Code,
		Headers:      rec.Header(),
	}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// HasAttribute checks if the attribute name resolved to value.
func (r *TestResult) HasAttribute(name string, value any) bool {
	v, ok := r.Attributes.Get(name)
	return ok && sameValue(v, value)
}

// IsOK returns true if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasHeader checks if a header has the expected value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}
