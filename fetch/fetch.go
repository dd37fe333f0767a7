// Package fetch runs a fetch function over a set of keys with a fixed
// concurrency cap, collecting all results or failing fast on the first
// error. Used to pull many locales from the translation service without
// overwhelming it.
package fetch

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit caps simultaneous in-flight requests against the
// translation service.
const DefaultLimit = 36

// Map calls fn for every key with at most limit concurrent executions and
// returns the results keyed by input. On the first failure no further keys
// are scheduled and the first error is returned; results collected so far
// are discarded. Each key writes into its own slot, so the only shared
// state is the result map itself.
func Map[K comparable, V any](ctx context.Context, keys []K, limit int, fn func(context.Context, K) (V, error)) (map[K]V, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var mu sync.Mutex
	out := make(map[K]V, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, key := range keys {
		key := key
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			value, err := fn(ctx, key)
			if err != nil {
				return err
			}
			mu.Lock()
			out[key] = value
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
