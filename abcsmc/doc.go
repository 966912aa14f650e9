// SPDX-License-Identifier: MIT

// Package abcsmc implements approximate Bayesian computation by sequential
// Monte Carlo (ABC-SMC, Toni et al. 2009).
//
// A Model knows how to draw from its prior, perturb a parameter vector, and
// simulate a dataset whose distance to the observed data is returned as one
// or more components. Run keeps a population of particles per round:
//
//   - round 0 draws every particle from the prior;
//   - later rounds pick an ancestor from the previous population by weight,
//     perturb it and drop proposals outside the prior support;
//   - a proposal is accepted when every distance component is within the
//     round's threshold;
//   - accepted particles are weighted prior(θ) / Σ_j w_j K(θ_j → θ);
//   - the next thresholds are a quantile of the accepted distances.
//
// Particles of one round are sampled concurrently. Each (round, particle)
// pair owns its own random stream derived from Config.Seed, so a run is
// bit-for-bit reproducible whatever the number of workers.
//
// Two models are provided: a binomial success probability under a Beta
// prior (BinomialModel) and a linear regression with uniform priors whose
// distance compares least-squares fits (LinearRegressionModel).
package abcsmc
