package pull

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openblocks-dev/txsync/locales"
	"github.com/openblocks-dev/txsync/msgtree"
)

// ResourcePackager is the packager application's message bundle.
const ResourcePackager = "packager-strings"

const packagerThreshold = 0.5

// SyncPackager pulls the packager strings and writes one JSON file per
// locale, rewrites the generated section of the locale manifest to lazily
// reference each file, and regenerates the locale-name lookup from the
// static table.
func SyncPackager(ctx context.Context, p *Puller, dir string) error {
	result, err := p.Pull(ctx, ResourcePackager, packagerThreshold)
	if err != nil {
		return err
	}

	codes := make([]string, 0, len(result))
	for locale := range result {
		codes = append(codes, locale)
	}
	sort.Strings(codes)

	localesDir := filepath.Join(dir, "src", "locales")
	for _, locale := range codes {
		path := filepath.Join(localesDir, locale+".json")
		if err := writeTreeFile(path, result[locale]); err != nil {
			return err
		}
	}
	p.log("wrote %d locale files to %s", len(codes), localesDir)

	// Manifest entries load each bundle on demand.
	var b strings.Builder
	b.WriteString("\n")
	for _, locale := range codes {
		fmt.Fprintf(&b, "  %q: () => require(%q),\n", locale, "./"+locale+".json")
	}
	indexPath := filepath.Join(localesDir, "index.js")
	if err := PatchFile(indexPath, Marker, b.String()); err != nil {
		return err
	}
	p.log("patched %s", indexPath)

	// Locale names come from the static table, not from the service.
	names := msgtree.Tree{}
	if name, ok := locales.Name(p.SourceLocale); ok {
		names[p.SourceLocale] = name
	}
	for _, locale := range codes {
		if name, ok := locales.Name(locale); ok {
			names[locale] = name
		}
	}
	namesPath := filepath.Join(localesDir, "locale-names.json")
	if err := writeTreeFile(namesPath, names); err != nil {
		return err
	}
	p.log("wrote %s", namesPath)

	return nil
}
