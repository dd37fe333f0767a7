package pull

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openblocks-dev/txsync/msgtree"
)

func TestSyncPackager_WritesFilesAndPatchesManifest(t *testing.T) {
	dir := t.TempDir()
	localesDir := filepath.Join(dir, "src", "locales")
	if err := os.MkdirAll(localesDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	index := "// generated below\nexport default {\n/*===*/\n  \"stale\": () => require(\"./stale.json\"),\n/*===*/\n};\n"
	if err := os.WriteFile(filepath.Join(localesDir, "index.js"), []byte(index), 0644); err != nil {
		t.Fatalf("writing index.js: %v", err)
	}

	svc := &fakeService{trees: map[string]msgtree.Tree{
		"en": {"title": "Packager"},
		"de": {"title": "Paketierer"},
		"fr": {"title": "Empaqueteur"},
	}}
	p := newPuller(svc, []string{"en", "de", "fr"})

	if err := SyncPackager(context.Background(), p, dir); err != nil {
		t.Fatalf("SyncPackager error: %v", err)
	}

	// Per-locale files.
	deData, err := os.ReadFile(filepath.Join(localesDir, "de.json"))
	if err != nil {
		t.Fatalf("reading de.json: %v", err)
	}
	var de map[string]string
	if err := json.Unmarshal(deData, &de); err != nil {
		t.Fatalf("de.json is not valid JSON: %v", err)
	}
	if de["title"] != "Paketierer" {
		t.Fatalf("unexpected de.json content: %v", de)
	}

	// Manifest patched, markers intact, stale entry gone.
	idx, err := os.ReadFile(filepath.Join(localesDir, "index.js"))
	if err != nil {
		t.Fatalf("reading index.js: %v", err)
	}
	s := string(idx)
	if strings.Count(s, Marker) != 2 {
		t.Fatalf("markers not preserved: %q", s)
	}
	if strings.Contains(s, "stale") {
		t.Fatalf("stale manifest entry survived: %q", s)
	}
	if !strings.Contains(s, `"de": () => require("./de.json"),`) {
		t.Fatalf("manifest missing de entry: %q", s)
	}
	if !strings.Contains(s, "// generated below") {
		t.Fatalf("content outside markers was modified: %q", s)
	}

	// Locale names from the static table, source locale included.
	namesData, err := os.ReadFile(filepath.Join(localesDir, "locale-names.json"))
	if err != nil {
		t.Fatalf("reading locale-names.json: %v", err)
	}
	var names map[string]string
	if err := json.Unmarshal(namesData, &names); err != nil {
		t.Fatalf("locale-names.json is not valid JSON: %v", err)
	}
	if names["en"] != "English" || names["de"] != "Deutsch" || names["fr"] != "Français" {
		t.Fatalf("unexpected locale names: %v", names)
	}
}

func TestSyncDesktop_PatchesInlineScript(t *testing.T) {
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	if err := os.MkdirAll(docs, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	html := "<html><script>/*===*/const translations = {};/*===*/</script></html>"
	if err := os.WriteFile(filepath.Join(docs, "index.html"), []byte(html), 0644); err != nil {
		t.Fatalf("writing index.html: %v", err)
	}

	svc := &fakeService{trees: map[string]msgtree.Tree{
		"en": {"download": "Download"},
		"it": {"download": "Scarica"},
	}}
	p := newPuller(svc, []string{"en", "it"})

	if err := SyncDesktop(context.Background(), p, dir); err != nil {
		t.Fatalf("SyncDesktop error: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(docs, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	want := `/*===*/const translations = {"it":{"download":"Scarica"}};/*===*/`
	if !strings.Contains(string(out), want) {
		t.Fatalf("inline script not patched:\n got: %s\nwant substring: %s", out, want)
	}

	appData, err := os.ReadFile(filepath.Join(dir, "src", "l10n", "translations.json"))
	if err != nil {
		t.Fatalf("reading translations.json: %v", err)
	}
	var app map[string]map[string]string
	if err := json.Unmarshal(appData, &app); err != nil {
		t.Fatalf("translations.json is not valid JSON: %v", err)
	}
	if app["it"]["download"] != "Scarica" {
		t.Fatalf("unexpected translations.json: %v", app)
	}
}

func TestSyncGUI_WritesBothResources(t *testing.T) {
	dir := t.TempDir()

	svc := &fakeService{trees: map[string]msgtree.Tree{
		"en": {"ok": "OK"},
		"nl": {"ok": "Oké"},
	}}
	p := newPuller(svc, []string{"en", "nl"})

	if err := SyncGUI(context.Background(), p, dir); err != nil {
		t.Fatalf("SyncGUI error: %v", err)
	}

	for _, rel := range []string{
		filepath.Join("src", "lib", "l10n", "generated-translations.json"),
		filepath.Join("src", "addons", "settings", "translations.json"),
	} {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			t.Fatalf("reading %s: %v", rel, err)
		}
		var got map[string]map[string]string
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("%s is not valid JSON: %v", rel, err)
		}
		if got["nl"]["ok"] != "Oké" {
			t.Fatalf("%s missing translation: %v", rel, got)
		}
	}
}
