package bench

import "fmt"

// Query is anything that can answer a single reachability test — shared by
// dispatch.Algorithm, hypergraph.Index, and a plain BiBFS oracle so Run can
// compare them uniformly.
type Query func(u, v VID) bool

// Disagreement records one pair where a candidate's answer diverged from
// the oracle's.
type Disagreement struct {
	Pair     Pair
	Oracle   bool
	Got      bool
	Strategy string
}

// Report summarizes one benchmark run across candidate strategies.
type Report struct {
	NumPairs      int
	Disagreements []Disagreement
}

// Agrees reports whether every candidate matched the oracle on every pair
// (spec.md §8 scenario 5: cross-strategy agreement on 1000 random pairs).
func (r Report) Agrees() bool { return len(r.Disagreements) == 0 }

// Run checks every candidate strategy against oracle over pairs, recording
// every disagreement rather than stopping at the first one — the original
// implementation's cal_ratio.cpp main loop logs every mismatched pair
// before reporting overall agreement.
func Run(pairs []Pair, oracle Query, candidates map[string]Query) Report {
	report := Report{NumPairs: len(pairs)}
	for _, p := range pairs {
		want := oracle(p.U, p.V)
		for name, candidate := range candidates {
			got := candidate(p.U, p.V)
			if got != want {
				report.Disagreements = append(report.Disagreements, Disagreement{
					Pair: p, Oracle: want, Got: got, Strategy: name,
				})
			}
		}
	}
	return report
}

// String renders a short human-readable summary, the way the original's
// OutputHandler::writeReachabilityQuery logs one line per checked pair.
func (d Disagreement) String() string {
	return fmt.Sprintf("strategy %q disagreed on (%d,%d): oracle=%v got=%v", d.Strategy, d.Pair.U, d.Pair.V, d.Oracle, d.Got)
}
