// Package experience aggregates dated skill-usage intervals into
// non-overlapping month totals.
package experience

import (
	"sort"
	"time"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// span is a closed interval after open ends have been resolved.
type span struct {
	start time.Time
	end   time.Time
}

// TotalMonths merges possibly-overlapping intervals and returns the total
// duration in whole months, overlaps counted once. Open-ended intervals are
// resolved to now. Malformed intervals (missing start, start after end) are
// discarded silently; zero usable intervals yields zero. Never returns an
// error.
func TotalMonths(intervals []types.ExperienceInterval, now time.Time) int {
	spans := resolveSpans(intervals, now)
	if len(spans) == 0 {
		return 0
	}

	total := 0
	for _, merged := range mergeSpans(spans) {
		total += monthsBetween(merged.start, merged.end)
	}
	return total
}

// GroupByLabel buckets intervals by folded skill label so per-skill totals can
// be computed with TotalMonths on each bucket.
func GroupByLabel(intervals []types.ExperienceInterval) map[string][]types.ExperienceInterval {
	groups := make(map[string][]types.ExperienceInterval)
	for _, interval := range intervals {
		label := taxonomy.Fold(interval.SkillLabel)
		if label == "" {
			continue
		}
		groups[label] = append(groups[label], interval)
	}
	return groups
}

// resolveSpans drops malformed intervals and resolves open ends to now.
func resolveSpans(intervals []types.ExperienceInterval, now time.Time) []span {
	spans := make([]span, 0, len(intervals))
	for _, interval := range intervals {
		if interval.Start.IsZero() {
			continue
		}
		end := now
		if interval.End != nil {
			end = *interval.End
		}
		if interval.Start.After(end) {
			continue
		}
		spans = append(spans, span{start: interval.Start, end: end})
	}
	return spans
}

// mergeSpans collapses overlapping or touching spans into a minimal
// non-overlapping set. Input must be non-empty.
func mergeSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		return spans[i].start.Before(spans[j].start)
	})

	merged := make([]span, 0, len(spans))
	current := spans[0]
	for _, next := range spans[1:] {
		if !next.start.After(current.end) {
			if next.end.After(current.end) {
				current.end = next.end
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// monthsBetween counts whole calendar months from start to end, rounding
// fractional trailing days down.
func monthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
