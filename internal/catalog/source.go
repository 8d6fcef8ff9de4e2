package catalog

import "context"

// Source is the read-only catalog collaborator: it resolves with the full
// product list or fails. Consumers never mutate what it returns; a failure
// renders as "no eligible products", never as a crash.
type Source interface {
	Products(ctx context.Context) ([]Product, error)
}
