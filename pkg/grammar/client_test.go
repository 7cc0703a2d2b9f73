package grammar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/check" {
			t.Errorf("path = %q, want /v1/check", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}

		var contents []Content
		if err := json.NewDecoder(r.Body).Decode(&contents); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if len(contents) != 1 || contents[0].ContentID != "starts_with" {
			t.Errorf("contents = %+v", contents)
		}

		json.NewEncoder(w).Encode([]Result{
			{
				ContentID: "starts_with",
				Errors: []CheckError{
					{ID: "1", StartPosition: 0, EndPosition: 3, Type: SpellingRule, Suggestions: []string{"This"}},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	results, err := client.Check(context.Background(), []Content{{ContentID: "starts_with", HTML: "Ths is it"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || len(results[0].Errors) != 1 {
		t.Fatalf("results = %+v", results)
	}
	if results[0].Errors[0].Suggestions[0] != "This" {
		t.Errorf("suggestion = %q, want This", results[0].Errors[0].Suggestions[0])
	}
}

func TestClientCheckServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.Check(context.Background(), []Content{{ContentID: "x", HTML: "y"}})
	if err == nil {
		t.Fatal("err = nil, want failure on non-200 status")
	}
}

func TestClientCheckUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "")
	_, err := client.Check(context.Background(), []Content{{ContentID: "x", HTML: "y"}})
	if err == nil {
		t.Fatal("err = nil, want connection failure")
	}
}
