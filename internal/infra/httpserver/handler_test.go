package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ameerdhi7/bashy/internal/domain"
)

func TestHandler_SameReplyForEveryRequest(t *testing.T) {
	h := NewHandler(domain.DefaultReply())

	cases := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/", ""},
		{http.MethodPost, "/anything", `{"arbitrary":"body"}`},
		{http.MethodGet, "/favicon.ico", ""},
		{http.MethodPut, "/a/b/c?x=1", "payload"},
		{http.MethodDelete, "/", ""},
		{http.MethodPatch, "/users/42", "x"},
		{http.MethodOptions, "/", ""},
		{"BREW", "/coffee", ""},
	}

	for _, c := range cases {
		req := httptest.NewRequest(c.method, c.target, strings.NewReader(c.body))
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s %s: expected 200, got %d", c.method, c.target, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
			t.Errorf("%s %s: unexpected content type %q", c.method, c.target, ct)
		}
		if got := rec.Body.String(); got != "Hello World" {
			t.Errorf("%s %s: expected body Hello World, got %q", c.method, c.target, got)
		}
		if cl := rec.Header().Get("Content-Length"); cl != "11" {
			t.Errorf("%s %s: expected content length 11, got %q", c.method, c.target, cl)
		}
	}
}

func TestHandler_CustomReply(t *testing.T) {
	h := NewHandler(domain.Reply{
		Status:      http.StatusTeapot,
		ContentType: "text/html",
		Body:        "<p>hi</p>",
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "text/html" {
		t.Fatalf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
	if rec.Body.String() != "<p>hi</p>" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestHandler_ZeroStatusDefaultsToOK(t *testing.T) {
	h := NewHandler(domain.Reply{Body: "x"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
