package fetcher

import "context"

type SearchResult struct {
	Title   string
	Snippet string
}

// SearchSource is the live data collaborator: a free-text search returning
// ranked result snippets. Implementations are expected to honour context
// cancellation.
type SearchSource interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
