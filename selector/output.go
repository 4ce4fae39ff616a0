package selector

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 50

func printProposal(w io.Writer, p *Proposal, seed uint64, explain bool) {
	req := p.Request
	fmt.Fprintf(w, "Proposal %s (seed %d)\n", p.ID, seed)
	fmt.Fprintf(w, "%s, scale %d, %s: %d lead + %d support, %d eligible, %d excluded\n",
		req.Category, req.Scale, req.Month,
		p.Requirement.Lead, p.Requirement.Support,
		p.PoolSize, len(p.Excluded))

	if explain && len(p.Excluded) > 0 {
		fmt.Fprintln(w)
		for _, ex := range p.Excluded {
			fmt.Fprintf(w, "  excluded %-20s %-12s %s\n", ex.Name, ex.Reason, ex.Details)
		}
	}

	if p.Outcome == OutcomeEmpty {
		fmt.Fprintf(w, "\nNo eligible candidates found for %s.\n", req.Month)
		return
	}

	if explain {
		for _, r := range p.Rounds {
			fmt.Fprintf(w, "\nDraw %d:\n", r.Slot)
			for _, wc := range r.Weights {
				mark := " "
				if wc.ID == r.Winner {
					mark = "*"
				}
				fmt.Fprintf(w, "  %s %-20s weight %2d  penalty %2d\n",
					mark, p.Name(wc.ID), wc.Weight, wc.Penalty)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("-", ruleWidth))
	for _, tm := range p.Team {
		fmt.Fprintf(w, "%-8s | %-20s | Exp: %.1f\n", tm.Role, tm.Name, tm.Experience)
	}
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", ruleWidth))

	if p.HasBalance {
		fmt.Fprintf(w, "Team avg experience: %.2f (%s)\n", p.Balance.AvgExperience, p.Balance.Status)
	}

	if p.Outcome == OutcomeShort {
		fmt.Fprintf(w, "Warning: only %d of %d slots could be filled\n",
			len(p.Team), p.Requirement.Total())
	}
}

func printSimulation(w io.Writer, r *SimulationReport) {
	req := r.Request
	fmt.Fprintf(w, "Simulated %d proposals (seed %d)\n", r.Trials, r.Seed)
	fmt.Fprintf(w, "%s, scale %d, %s: %d lead + %d support, %d eligible, %d excluded\n\n",
		req.Category, req.Scale, req.Month,
		r.Requirement.Lead, r.Requirement.Support,
		r.PoolSize, len(r.Excluded))

	if r.PoolSize == 0 {
		fmt.Fprintf(w, "No eligible candidates found for %s.\n", req.Month)
		return
	}

	fmt.Fprintf(w, "%-20s %5s %8s %8s\n", "NAME", "EXP", "PICKED", "LEAD")
	for _, f := range r.Members {
		fmt.Fprintf(w, "%-20s %5.1f %7.1f%% %7.1f%%\n",
			f.Name, f.Experience,
			100*f.PickRate(r.Trials),
			100*float64(f.Leads)/float64(r.Trials))
	}

	fmt.Fprintf(w, "\nBalanced teams: %d of %d (%.1f%%)\n",
		r.Balanced, r.Trials, 100*float64(r.Balanced)/float64(r.Trials))
	if short := r.Outcomes[OutcomeShort]; short > 0 {
		fmt.Fprintf(w, "Short teams: %d\n", short)
	}
}
