// Package runner fans a GRASP search out across Config.NumberOfThreads
// independent workers and reduces their per-worker best solutions to a
// single global best, mirroring the reference implementation's
// thread-pool driver.
package runner

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"morproj/config"
	"morproj/grasp"
	"morproj/logx"
	"morproj/model"
)

// Run drives cfg.NumberOfThreads workers, each running cfg.Iters GRASP
// iterations against the same read-only instance with its own
// deterministically-derived RNG stream, and returns the best solution
// found across all of them. Returns (nil, nil) if every iteration on
// every worker was infeasible. Returns ctx.Err() if ctx is cancelled
// before every worker has finished; the per-worker bests are then
// discarded.
//
// cfg.Seed == 0 is resolved to a wall-clock-derived seed once here, so
// every worker's stream still derives from a single base seed but that
// base differs across separate process invocations.
func Run(ctx context.Context, cfg config.Config, instance *model.ProblemInstance) (*model.Solution, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	results := make([]*model.Solution, cfg.NumberOfThreads)

	group, gctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.NumberOfThreads; w++ {
		w := w
		group.Go(func() error {
			results[w] = runWorker(gctx, cfg, seed, instance, w)
			return gctx.Err()
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var best *model.Solution
	for _, sol := range results {
		if sol == nil {
			continue
		}
		if best == nil || sol.Value < best.Value {
			best = sol
		}
	}
	return best, nil
}

// runWorker runs cfg.Iters GRASP iterations on one independent RNG
// stream and returns the best solution it found, or nil if every
// iteration was infeasible. IterFound counts down from cfg.Iters-1 to
// 0 as the reference runner does (iteration starts at the iteration
// budget and is decremented before use), so a deterministic instance
// whose very first iteration is already optimal is tagged
// cfg.Iters-1, not 0.
func runWorker(ctx context.Context, cfg config.Config, seed int64, instance *model.ProblemInstance, worker int) *model.Solution {
	rng := grasp.NewWorkerRNG(seed, uint64(worker))
	g := grasp.New(instance, cfg.GraspConfig, rng)

	var best *model.Solution
	errorCount := 0
	var lastErr error

	for iter := 0; iter < cfg.Iters; iter++ {
		if ctx.Err() != nil {
			break
		}

		sol, err := g.Iterate()
		if err != nil {
			errorCount++
			lastErr = err
			continue
		}
		sol.IterFound = cfg.Iters - 1 - iter

		if best == nil || sol.Value < best.Value {
			best = sol
			logx.Debugf("worker %d: new best %.4f at iteration %d", worker, sol.Value, iter)
		}

		if cfg.ReportEvery > 0 && (iter+1)%cfg.ReportEvery == 0 {
			logx.Infof("worker %d: %d/%d iterations done, best %.4f", worker, iter+1, cfg.Iters, bestValue(best))
		}
	}

	if errorCount > 0 {
		logx.Errorf("worker %d: %d/%d iterations infeasible, last error: %v", worker, errorCount, cfg.Iters, lastErr)
	}
	return best
}

func bestValue(sol *model.Solution) model.Cost {
	if sol == nil {
		return 0
	}
	return sol.Value
}
