package response_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/sunny-bhakta/payments-service/internal/api/response"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.JSON(rec, http.StatusCreated, map[string]string{"a": "b"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec.Body.String() != `{"a":"b"}` {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
	if rec.Header().Get("Content-Length") != "9" {
		t.Fatalf("expected Content-Length 9, got %q", rec.Header().Get("Content-Length"))
	}
}

// TestJSON_Unencodable verifies an encoding failure becomes a 500 detail
// rather than an empty 200.
func TestJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()
	response.JSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Body.String() != `{"detail":"Internal Server Error"}` {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestDetail(t *testing.T) {
	cases := map[int]string{
		http.StatusNotFound:            `{"detail":"Not Found"}`,
		http.StatusMethodNotAllowed:    `{"detail":"Method Not Allowed"}`,
		http.StatusTooManyRequests:     `{"detail":"Too Many Requests"}`,
		http.StatusInternalServerError: `{"detail":"Internal Server Error"}`,
	}
	for status, want := range cases {
		rec := httptest.NewRecorder()
		response.Detail(rec, status)

		if rec.Code != status {
			t.Fatalf("expected %d, got %d", status, rec.Code)
		}
		if rec.Body.String() != want {
			t.Fatalf("%d: expected %s, got %s", status, want, rec.Body.String())
		}
		if got := rec.Header().Get("Content-Length"); got != strconv.Itoa(len(want)) {
			t.Fatalf("%d: expected Content-Length %d, got %q", status, len(want), got)
		}
	}
}
