// Package pull implements the pull half of the sync: fetching every
// supported locale's translations for a resource, reducing them to the
// minimal useful set, and writing them into the sibling application
// checkouts that are present.
package pull

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openblocks-dev/txsync/fetch"
	"github.com/openblocks-dev/txsync/locales"
	"github.com/openblocks-dev/txsync/msgtree"
)

// Service is the translation service operation the puller depends on.
type Service interface {
	PullTranslation(ctx context.Context, resource, locale string) (msgtree.Tree, error)
}

// Puller retrieves one resource's translations for all supported locales.
type Puller struct {
	// Service is the translation service client.
	Service Service
	// Locales is the supported locale set, source locale included.
	Locales []string
	// SourceLocale is the diff baseline; must be in Locales.
	SourceLocale string
	// Concurrency caps in-flight fetches (0 = fetch.DefaultLimit).
	Concurrency int
	// Log emits per-locale progress messages.
	Log func(format string, args ...any)
}

func (p *Puller) log(format string, args ...any) {
	if p.Log != nil {
		p.Log(format, args...)
	}
}

// Pull fetches the resource for every supported locale, normalizes each
// tree, strips strings identical to the source language, and drops locales
// whose remaining translation count is below the completion threshold.
//
// The result maps lowercased locale codes to their filtered trees. The
// source locale is never part of the result; it only serves as the diff
// baseline. Any single fetch failure fails the whole pull, naming the
// locale that failed.
func (p *Puller) Pull(ctx context.Context, resource string, threshold float64) (map[string]msgtree.Tree, error) {
	for _, locale := range p.Locales {
		if !locales.Valid(locale) {
			return nil, fmt.Errorf("malformed locale code %q in supported set", locale)
		}
	}

	trees, err := fetch.Map(ctx, p.Locales, p.Concurrency, func(ctx context.Context, locale string) (msgtree.Tree, error) {
		tree, err := p.Service.PullTranslation(ctx, resource, locales.ServiceCode(locale))
		if err != nil {
			return nil, fmt.Errorf("fetching %s for locale %s: %w", resource, locale, err)
		}
		p.log("fetched %s %s (%d strings)", resource, locale, tree.CountLeaves())
		return tree, nil
	})
	if err != nil {
		return nil, err
	}

	source, ok := trees[p.SourceLocale]
	if !ok {
		return nil, fmt.Errorf("source locale %q missing from %s results", p.SourceLocale, resource)
	}

	sourceCount := source.CountLeaves()
	required := float64(sourceCount) * threshold
	if required < 1 {
		required = 1
	}

	out := make(map[string]msgtree.Tree)
	for locale, tree := range trees {
		if locale == p.SourceLocale {
			continue
		}
		filtered := msgtree.RemoveRedundant(tree, source)
		count := filtered.CountLeaves()
		if float64(count) < required {
			p.log("skipping %s for %s: %d of %d strings translated (need %.0f)",
				locale, resource, count, sourceCount, required)
			continue
		}
		out[strings.ToLower(locale)] = filtered
	}

	p.log("%s: keeping %d of %d locales", resource, len(out), len(p.Locales)-1)
	return out, nil
}

// writeTreeFile writes a tree as formatted JSON, creating parent
// directories as needed.
func writeTreeFile(path string, tree msgtree.Tree) error {
	data, err := tree.MarshalIndent()
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// combined converts a per-locale result set into a single tree keyed by
// locale, the shape the single-file targets persist.
func combined(result map[string]msgtree.Tree) msgtree.Tree {
	tree := make(msgtree.Tree, len(result))
	for locale, sub := range result {
		tree[locale] = sub
	}
	return tree
}
