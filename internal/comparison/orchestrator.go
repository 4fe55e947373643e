// Package comparison runs the match engine across several candidates for one
// vacancy and produces a ranked comparison.
package comparison

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Candidate count bounds per comparison run. A deliberate product constraint,
// not a performance limit.
const (
	MinCandidates = 2
	MaxCandidates = 5
)

// Orchestrator fans one vacancy out across 2-5 candidates.
type Orchestrator struct {
	engine *matching.Engine
}

// NewOrchestrator wraps a match engine for batch comparison runs.
func NewOrchestrator(engine *matching.Engine) *Orchestrator {
	return &Orchestrator{engine: engine}
}

// Compare matches every candidate against the vacancy concurrently, then ranks
// the outcomes. Candidates share no mutable state so each runs on its own
// goroutine. A candidate whose data is merely poor (nothing normalizes, no
// usable intervals) still produces an outcome; only structural violations
// abort the run.
func (o *Orchestrator) Compare(ctx context.Context, vacancy types.Vacancy, candidates []types.CandidateProfile) (*types.ComparisonResult, error) {
	if len(candidates) < MinCandidates || len(candidates) > MaxCandidates {
		return nil, &matching.InvalidRequestError{
			Message: fmt.Sprintf("comparison requires between %d and %d candidates, got %d",
				MinCandidates, MaxCandidates, len(candidates)),
		}
	}

	started := time.Now()
	outcomes := make([]types.MatchOutcome, len(candidates))

	g, _ := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		g.Go(func() error {
			outcome, err := o.engine.Match(vacancy, candidate)
			if err != nil {
				return fmt.Errorf("failed to match resume %s: %w", candidate.ResumeID, err)
			}
			outcomes[i] = *outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rankOutcomes(outcomes)

	return &types.ComparisonResult{
		Ranked:          outcomes,
		AllUniqueSkills: uniqueSkills(outcomes),
		ProcessingMS:    time.Since(started).Milliseconds(),
	}, nil
}

// rankOutcomes sorts by match percentage descending, breaking ties by matched
// mandatory count descending, then resume ID ascending for determinism.
func rankOutcomes(outcomes []types.MatchOutcome) {
	sort.SliceStable(outcomes, func(i, j int) bool {
		if outcomes[i].MatchPercentage != outcomes[j].MatchPercentage {
			return outcomes[i].MatchPercentage > outcomes[j].MatchPercentage
		}
		mi, mj := outcomes[i].MandatoryMatched(), outcomes[j].MandatoryMatched()
		if mi != mj {
			return mi > mj
		}
		return outcomes[i].ResumeID < outcomes[j].ResumeID
	})
}

// uniqueSkills builds the sorted union of every skill seen across all
// candidates' matched, missing, and extra sets, for the skill-matrix view.
func uniqueSkills(outcomes []types.MatchOutcome) []string {
	seen := make(map[string]struct{})
	for _, outcome := range outcomes {
		for _, result := range outcome.MatchedSkills {
			if result.CanonicalCandidateSkill != "" {
				seen[result.CanonicalCandidateSkill] = struct{}{}
			} else {
				seen[result.RequirementSkill] = struct{}{}
			}
		}
		for _, result := range outcome.MissingSkills {
			seen[result.RequirementSkill] = struct{}{}
		}
		for _, extra := range outcome.ExtraSkills {
			seen[extra] = struct{}{}
		}
	}

	union := make([]string, 0, len(seen))
	for skill := range seen {
		union = append(union, skill)
	}
	sort.Strings(union)
	return union
}
