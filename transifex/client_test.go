package transifex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPullTranslation_DecodesAndNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/project/openblocks/resource/editor-messages/translation/fr" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header: %q", got)
		}
		w.Write([]byte(`{"greeting": {"string": "Bonjour"}, "menu": {"file": "Fichier"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "openblocks", "secret")
	tree, err := c.PullTranslation(context.Background(), "editor-messages", "fr")
	if err != nil {
		t.Fatalf("PullTranslation error: %v", err)
	}

	if tree["greeting"] != "Bonjour" {
		t.Fatalf("structured entry not collapsed: %#v", tree["greeting"])
	}
	if tree.CountLeaves() != 2 {
		t.Fatalf("expected 2 leaves, got %d", tree.CountLeaves())
	}
}

func TestPullTranslation_ServiceErrorNamesResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such resource", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "openblocks", "secret")
	_, err := c.PullTranslation(context.Background(), "editor-messages", "fr")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "editor-messages/fr") {
		t.Fatalf("error missing context: %v", err)
	}
}

func TestPushSource_UploadsMessages(t *testing.T) {
	var received map[string]Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/api/project/openblocks/resource/source-strings/source" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding upload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "openblocks", "secret")
	msgs := map[string]Message{
		"ob.greeting": {String: "Hello", DeveloperComment: "shown on startup"},
	}
	if err := c.PushSource(context.Background(), "source-strings", msgs); err != nil {
		t.Fatalf("PushSource error: %v", err)
	}

	got, ok := received["ob.greeting"]
	if !ok || got.String != "Hello" || got.DeveloperComment != "shown on startup" {
		t.Fatalf("unexpected upload payload: %#v", received)
	}
}

func TestPushSource_FailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(srv.URL, "openblocks", "secret")
	err := c.PushSource(context.Background(), "source-strings", nil)
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
}
