// SPDX-License-Identifier: MIT

package abcsmc

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result holds every population of a run.
type Result struct {
	// Particles[round][particle] is a parameter vector.
	Particles [][][]float64
	// Weights[round][particle], normalized per round.
	Weights [][]float64
	// Thresholds[round][component] used to accept the particles of that round.
	Thresholds [][]float64
	// Attempts[round] is the number of proposals made in that round.
	Attempts []int
}

// Rounds returns the number of populations.
func (r *Result) Rounds() int { return len(r.Particles) }

// Param returns parameter k of every particle of one round.
// Returns nil when round or k are out of range.
func (r *Result) Param(k, round int) []float64 {
	if round < 0 || round >= len(r.Particles) {
		return nil
	}
	pop := r.Particles[round]
	if len(pop) == 0 || k < 0 || k >= len(pop[0]) {
		return nil
	}
	out := make([]float64, len(pop))
	for i, theta := range pop {
		out[i] = theta[k]
	}

	return out
}

// PosteriorMean returns the weighted mean of the last population.
func (r *Result) PosteriorMean() []float64 {
	last := len(r.Particles) - 1
	if last < 0 {
		return nil
	}
	pop, w := r.Particles[last], r.Weights[last]
	mean := make([]float64, len(pop[0]))
	for i, theta := range pop {
		for k, v := range theta {
			mean[k] += w[i] * v
		}
	}

	return mean
}

// population is the read-only state a round samples from.
type population struct {
	particles [][]float64
	weights   []float64
}

// Run performs ABC-SMC for cfg.Rounds rounds.
//
// Implementation:
//   - Stage 1: validate cfg and the model; thresholds start at
//     cfg.InitialThresholds (or +Inf).
//   - Stage 2: per round, sample cfg.Particles particles concurrently
//     (errgroup, cfg.Workers at a time), each from its own random stream,
//     and weight them against the previous population.
//   - Stage 3: normalize the weights and take the cfg.Quantile of the
//     accepted distances, per component, as the next thresholds.
//
// Errors:
//   - ErrInvalidConfig, ErrInvalidModel, ErrMaxAttempts, ErrDegenerateWeights,
//     errors returned by model.Distance, ctx.Err() on cancellation.
//
// Complexity: per round O(N·A·S + N²·K) for N particles, A attempts per
// particle, S simulation cost and K kernel cost.
func Run(ctx context.Context, model Model, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, smcErrorf(opRun, err)
	}
	if model == nil || model.Dim() <= 0 || model.Distances() <= 0 {
		return nil, smcErrorf(opRun, ErrInvalidModel)
	}
	nd := model.Distances()
	eps := make([]float64, nd)
	switch len(cfg.InitialThresholds) {
	case 0:
		for i := range eps {
			eps[i] = math.Inf(1)
		}
	case nd:
		copy(eps, cfg.InitialThresholds)
	default:
		return nil, smcErrorf(opRun, fmt.Errorf("%d initial thresholds for %d distance components: %w",
			len(cfg.InitialThresholds), nd, ErrInvalidConfig))
	}
	log := cfg.logger()

	n := cfg.Particles
	res := &Result{
		Particles:  make([][][]float64, 0, cfg.Rounds),
		Weights:    make([][]float64, 0, cfg.Rounds),
		Thresholds: make([][]float64, 0, cfg.Rounds),
		Attempts:   make([]int, 0, cfg.Rounds),
	}
	var prev *population
	for round := 0; round < cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, smcErrorf(opRun, err)
		}
		used := make([]float64, nd)
		copy(used, eps)

		particles := make([][]float64, n)
		distances := make([][]float64, n)
		weights := make([]float64, n)
		attempts := make([]int, n)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.workers())
		for i := 0; i < n; i++ {
			g.Go(func() error {
				s := sampler{model: model, prev: prev, eps: used, maxAttempts: cfg.MaxAttempts}
				theta, dist, tries, err := s.sample(gctx, particleRNG(cfg.Seed, round, i))
				if err != nil {
					return fmt.Errorf("round %d particle %d: %w", round, i, err)
				}
				particles[i], distances[i], attempts[i] = theta, dist, tries
				weights[i] = s.weight(theta)

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, smcErrorf(opRun, err)
		}

		if err := normalize(weights); err != nil {
			return nil, smcErrorf(opRun, fmt.Errorf("round %d: %w", round, err))
		}
		total := 0
		for _, a := range attempts {
			total += a
		}
		eps = nextThresholds(distances, nd, cfg.Quantile)

		res.Particles = append(res.Particles, particles)
		res.Weights = append(res.Weights, weights)
		res.Thresholds = append(res.Thresholds, used)
		res.Attempts = append(res.Attempts, total)
		prev = &population{particles: particles, weights: weights}

		log.Info("smc round done",
			zap.Int("round", round),
			zap.Float64s("thresholds", used),
			zap.Int("attempts", total),
			zap.Float64("acceptance", float64(n)/float64(total)),
		)
	}

	return res, nil
}

// sampler draws one particle against a fixed previous population.
type sampler struct {
	model       Model
	prev        *population // nil in round 0
	eps         []float64
	maxAttempts int
}

// sample proposes until every distance component is within its threshold.
// It returns the accepted vector, its distances and the number of proposals.
func (s sampler) sample(ctx context.Context, rng *rand.Rand) ([]float64, []float64, int, error) {
	var tries int
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, tries, err
		}
		if s.maxAttempts > 0 && tries >= s.maxAttempts {
			return nil, nil, tries, fmt.Errorf("%d proposals: %w", tries, ErrMaxAttempts)
		}
		tries++

		var theta []float64
		if s.prev == nil {
			theta = s.model.SamplePrior(rng)
		} else {
			j := WeightedChoice(rng, s.prev.weights)
			if j < 0 {
				return nil, nil, tries, ErrDegenerateWeights
			}
			theta = s.model.Perturb(rng, s.prev.particles[j])
			if !s.model.InSupport(theta) {
				continue
			}
		}

		dist, err := s.model.Distance(rng, theta)
		if err != nil {
			return nil, nil, tries, err
		}
		if within(dist, s.eps) {
			return theta, dist, tries, nil
		}
	}
}

// weight is 1 in round 0 and prior(θ) / Σ_j w_j K(θ_j → θ) afterwards.
func (s sampler) weight(theta []float64) float64 {
	if s.prev == nil {
		return 1
	}
	var denom float64
	for j, w := range s.prev.weights {
		if w == 0 {
			continue
		}
		denom += w * s.model.KernelPDF(s.prev.particles[j], theta)
	}

	return s.model.PriorPDF(theta) / denom
}

func within(dist, eps []float64) bool {
	if len(dist) != len(eps) {
		return false
	}
	for k, d := range dist {
		if !(d <= eps[k]) { // NaN never passes
			return false
		}
	}

	return true
}

// normalize scales w to sum to one in place.
func normalize(w []float64) error {
	var sum float64
	for _, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("weight %g: %w", v, ErrDegenerateWeights)
		}
		sum += v
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return fmt.Errorf("weight sum %g: %w", sum, ErrDegenerateWeights)
	}
	for i := range w {
		w[i] /= sum
	}

	return nil
}

// nextThresholds takes the q-quantile of each distance component.
func nextThresholds(distances [][]float64, nd int, q float64) []float64 {
	out := make([]float64, nd)
	col := make([]float64, len(distances))
	for k := 0; k < nd; k++ {
		for i, d := range distances {
			col[i] = d[k]
		}
		sort.Float64s(col)
		out[k] = Quantile(col, q)
	}

	return out
}
