// Package selector implements team selection for residence life programs.
//
// Given the RA roster, the history of past assignments and a program's
// scale, the selector proposes a team of leads and support staff. It
// balances experience and rotates social pairings while keeping the draw
// random enough that every eligible RA has a chance to be picked.
//
// # Selection Algorithm
//
// A proposal runs in four steps:
//   - Eligibility: reserve members and members who already have
//     MonthlyCap assignments in the program's month (any year) are left
//     out. Everyone else enters the pool with the same BaseWeight.
//   - Weighted draw: one slot at a time, every remaining candidate loses
//     PenaltyPerShared tickets for each past program shared with someone
//     already on the team. Weights never drop below 1. The winner is drawn
//     with probability proportional to its weight.
//   - Roles: the first Lead picks are leads, the rest support.
//   - Balance: the team's mean experience is reported as Balanced when it
//     falls inside [BalancedMin, BalancedMax].
//
// Penalties are recomputed every round since each new member changes the
// penalty of every remaining candidate. A round costs O(n*k) collaboration
// lookups for n remaining candidates and k selected members, plus an O(n)
// roulette-wheel draw.
//
// # Usage
//
//	sl := selector.NewSelector(log, selector.DefaultSettings(), metrics)
//	p, err := sl.Propose(ctx, src, selector.Request{
//	    Category: "Social", Scale: 2, Month: time.March,
//	}, rand.New(rand.NewPCG(seed, seed)))
package selector
