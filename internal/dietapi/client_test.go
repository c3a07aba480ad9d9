package dietapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIURL {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIURL)
	}

	u, err = parseBaseURL("https://diet.example.com:8443/app?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != "https://diet.example.com:8443" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatal("expected error for missing host")
	}
}

func TestClient_FetchDiet(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Martedì": {"Cena": [{"id": "c2", "name": "Minestrone"}]},
			"Lunedì": {"Pranzo": [{"id": "p1", "name": "Pasta", "ingredients": [{"name": "Pasta", "quantity": "80 g"}]}]}
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	data, err := c.FetchDiet(ctx)
	if err != nil {
		t.Fatalf("FetchDiet returned error: %v", err)
	}
	if gotPath != DietPath {
		t.Fatalf("path = %q, want %q", gotPath, DietPath)
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	names := data.DayNames()
	if len(names) != 2 || names[0] != "Martedì" || names[1] != "Lunedì" {
		t.Fatalf("days = %v, want server order [Martedì Lunedì]", names)
	}
	if dishes := data.Dishes("Lunedì", "Pranzo"); len(dishes) != 1 || dishes[0].Ingredients[0].Quantity != "80 g" {
		t.Fatalf("Lunedì Pranzo = %#v", dishes)
	}
}

func TestClient_FetchDietErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"server error with message", http.StatusInternalServerError, `{"error":"Failed to load diet data"}`, "status 500: Failed to load diet data"},
		{"not found", http.StatusNotFound, `nope`, "status 404"},
		{"malformed json", http.StatusOK, `{"Lunedì":`, "decode response"},
		{"wrong shape", http.StatusOK, `["Lunedì"]`, "decode response"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			c, err := NewClient(server.URL)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			_, err = c.FetchDiet(context.Background())
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("FetchDiet err = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchDiet(context.Background()); err == nil {
		t.Fatal("expected error from nil client")
	}
}
