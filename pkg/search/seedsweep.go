package search

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"acrostic/pkg/letter"
)

// ErrInfeasible is returned when the quote doesn't contain the
// attribution letters even once each — no seed can ever succeed.
var ErrInfeasible = errors.New("search: attribution letters not a subset of quote")

// ErrNoSolution is returned when every seed in the sweep failed to
// converge within its anneal budget.
var ErrNoSolution = errors.New("search: no solution found within the seed budget")

// MaxSeeds is the default bound on how many independent seeds the sweep
// will try before giving up. Overridden per-Search by
// config.SolverConfig.MaxSeeds (see New).
const MaxSeeds = 1000

// errSeedSucceeded is a sentinel returned by a winning seed goroutine
// purely so errgroup cancels its siblings' context. It never reaches the
// caller of Solve.
var errSeedSucceeded = errors.New("search: a seed converged")

// Solve runs the seed sweep: up to s.maxSeeds independent attempts, each
// with its own RNG derived from baseSeed and the attempt index, evaluated
// with up to concurrency goroutines at once. The first successful
// solution cancels the rest and is returned.
func (s *Search) Solve(ctx context.Context, quote letter.Set, attribution []letter.Letter, baseSeed uint64, concurrency int) (Solution, error) {
	if _, ok := newSolution(quote, attribution); !ok {
		return Solution{}, ErrInfeasible
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	result := make(chan Solution, 1)

	for seed := 0; seed < s.maxSeeds; seed++ {
		seed := seed
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}

			r := newRNG(baseSeed + uint64(seed))
			sol, _ := newSolution(quote, attribution)
			if s.anneal(&sol, r) {
				select {
				case result <- sol:
				default:
				}
				return errSeedSucceeded
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errSeedSucceeded) {
		return Solution{}, err
	}

	select {
	case sol := <-result:
		return sol, nil
	default:
		return Solution{}, ErrNoSolution
	}
}
