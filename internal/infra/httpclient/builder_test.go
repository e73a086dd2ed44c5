package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ameerdhi7/bashy/internal/domain"
)

func TestBuildRequestDefaultsToGET(t *testing.T) {
	req, err := BuildRequest(context.Background(), domain.ProbeSpec{URL: "http://127.0.0.1:3000/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", req.Method)
	}
	if req.Header.Get("Content-Type") != "" {
		t.Fatalf("expected no content type without a body")
	}
}

func TestBuildRequestWithBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed reading body: %v", err)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/anything" {
			t.Errorf("expected /anything, got %s", r.URL.Path)
		}
		if string(body) != "ping" {
			t.Errorf("expected body ping, got %q", body)
		}
		if r.Header.Get("User-Agent") != "bashy-probe" {
			t.Errorf("expected bashy-probe user agent")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req, err := BuildRequest(context.Background(), domain.ProbeSpec{
		URL:    srv.URL + "/anything",
		Method: "post",
		Body:   "ping",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed request: %v", err)
	}
	resp.Body.Close()
}

func TestBuildRequestRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "ftp://host/", "localhost:3000", "http://"} {
		_, err := BuildRequest(context.Background(), domain.ProbeSpec{URL: raw})
		if err == nil {
			t.Fatalf("%q: expected error", raw)
		}
		if !errors.Is(err, domain.ErrInvalidProbe) {
			t.Fatalf("%q: expected ErrInvalidProbe, got %v", raw, err)
		}
	}
}
