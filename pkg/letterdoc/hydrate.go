package letterdoc

import (
	"sync"
)

// HydrateItem is one independent content region to hydrate, keyed by a
// content id rather than a live reference so results can be stored even
// if the originating surface is gone.
type HydrateItem struct {
	ContentID string
	HTML      string
}

// HydrateHTML resolves a raw HTML string against the draft context
// with "not focused" semantics: values and barcode images are always
// shown, never placeholders. Each call constructs an independent
// throwaway document, so concurrent hydration of multiple strings
// never shares state.
func (e *Engine) HydrateHTML(raw string, d *Draft) (string, error) {
	doc, err := ImportHTML(raw)
	if err != nil {
		return "", err
	}
	e.ResolveVariables(doc, d, false)
	// Tokens imported from stored HTML may carry stale values; refresh
	// them from the same context.
	e.UpdateFromDraft(doc, d)
	return ExportHTML(doc), nil
}

// HydrateMany hydrates independent content regions concurrently (e.g.
// the six header cells of a letter rendered in one pass). The first
// import error wins; successfully hydrated items are still returned.
func (e *Engine) HydrateMany(items []HydrateItem, d *Draft) (map[string]string, error) {
	results := make(map[string]string, len(items))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, item := range items {
		wg.Add(1)
		go func(item HydrateItem) {
			defer wg.Done()
			out, err := e.HydrateHTML(item.HTML, d)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[item.ContentID] = out
		}(item)
	}
	wg.Wait()

	return results, firstErr
}
