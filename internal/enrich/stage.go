// Package enrich runs catalog entries through ordered stages of clean-up and
// lookup steps before they are published. Steps in one stage run in parallel
// on the same item; stages run one after another.
package enrich

import (
	"context"
)

// Step mutates one item in place. Steps sharing a stage run concurrently on
// the same item, so they must touch disjoint fields. A returned error is
// logged by the pipeline and processing continues.
//
// Example:
//
//	func upperName(ctx context.Context, b *models.Building) error { b.Name = strings.ToUpper(b.Name); return nil }
type Step[T any] func(ctx context.Context, item *T) error

// Stage groups steps that may run in parallel for a single item. The pipeline
// waits for every step of a stage before starting the next.
type Stage[T any] struct {
	steps []Step[T]
}

// NewStage constructs a Stage from the provided steps.
func NewStage[T any](steps ...Step[T]) Stage[T] {
	return Stage[T]{steps: steps}
}
