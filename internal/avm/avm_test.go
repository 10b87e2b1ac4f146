package avm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestClient_GetEstimate tests the provider round trip against a stub server.
//
// WHY: The refresh job trusts this client's output blindly. The client
// must send the address query and bearer token the provider expects, take
// the provider's best match, and reject responses that would write a
// garbage valuation.
func TestClient_GetEstimate(t *testing.T) {
	t.Run("returns the first estimate with its as-of date", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/estimates" {
				t.Errorf("Expected path /v1/estimates, got %s", r.URL.Path)
			}
			if r.URL.Query().Get("address") != "12 Sample Road" {
				t.Errorf("Expected address query, got %q", r.URL.Query().Get("address"))
			}
			if r.Header.Get("Authorization") != "Bearer test-token" {
				t.Errorf("Expected bearer token, got %q", r.Header.Get("Authorization"))
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"estimates": [
					{"address": "12 Sample Road", "suburb": "Richmond", "state": "VIC",
					 "estimate": 612500, "confidence_low": 580000, "confidence_high": 645000,
					 "as_of": "2024-06-14"},
					{"address": "12A Sample Road", "suburb": "Richmond", "state": "VIC",
					 "estimate": 400000, "confidence_low": 390000, "confidence_high": 410000,
					 "as_of": "2024-06-14"}
				]
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")

		value, asOf, err := client.GetEstimate(context.Background(), "12 Sample Road", "Richmond", "VIC")
		if err != nil {
			t.Fatalf("GetEstimate() returned unexpected error: %v", err)
		}
		if value != 612500 {
			t.Errorf("Expected best-match estimate 612500, got %v", value)
		}
		want := time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC)
		if !asOf.Equal(want) {
			t.Errorf("Expected as-of %v, got %v", want, asOf)
		}
	})

	t.Run("surfaces provider error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"estimates": [], "error": "address not found"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")

		_, _, err := client.GetEstimate(context.Background(), "nowhere", "", "")
		if err == nil {
			t.Fatal("Expected an error for provider-reported failure")
		}
	})

	t.Run("rejects non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")

		_, _, err := client.GetEstimate(context.Background(), "12 Sample Road", "Richmond", "VIC")
		if err == nil {
			t.Fatal("Expected an error for non-200 status")
		}
	})
}

// TestClient_ParseEstimate tests response validation.
func TestClient_ParseEstimate(t *testing.T) {
	client := NewClient("http://example.invalid", "")

	t.Run("rejects empty estimate list", func(t *testing.T) {
		if _, err := client.ParseEstimate(Response{}); err == nil {
			t.Error("Expected an error for empty estimate list")
		}
	})

	t.Run("rejects non-positive estimate", func(t *testing.T) {
		resp := Response{Estimates: []RawEstimate{
			{Address: "12 Sample Road", Estimate: 0, AsOf: "2024-06-14"},
		}}

		if _, err := client.ParseEstimate(resp); err == nil {
			t.Error("Expected an error for non-positive estimate")
		}
	})

	t.Run("rejects malformed as-of date", func(t *testing.T) {
		resp := Response{Estimates: []RawEstimate{
			{Address: "12 Sample Road", Estimate: 612500, AsOf: "14/06/2024"},
		}}

		if _, err := client.ParseEstimate(resp); err == nil {
			t.Error("Expected an error for malformed as-of date")
		}
	})
}
