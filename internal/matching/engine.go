// Package matching computes explainable match outcomes between candidate
// profiles and vacancy requirements.
package matching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/experience"
	"github.com/jonathan/resume-matcher/internal/normalizer"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Engine matches one candidate against one vacancy. It only reads the
// taxonomy snapshot handed in at construction, so a single Engine is safe for
// concurrent matching runs.
type Engine struct {
	snapshot *taxonomy.Snapshot
	cfg      ScoringConfig
	opts     normalizer.Options
	now      func() time.Time
}

// NewEngine creates an Engine over an immutable taxonomy snapshot.
func NewEngine(snapshot *taxonomy.Snapshot, cfg ScoringConfig, opts normalizer.Options) *Engine {
	return &Engine{
		snapshot: snapshot,
		cfg:      cfg,
		opts:     opts,
		now:      time.Now,
	}
}

// candidateSkill is one deduplicated candidate skill after normalization.
type candidateSkill struct {
	display string // canonical name, or trimmed raw text when unresolved
	key     string // folded lookup key
	claimed bool   // consumed by a requirement
}

// Match computes a MatchOutcome for one candidate against one vacancy.
// Requirement skill names are resolved through the vacancy's industry and
// organization scope; requirements that stay unresolved degrade to literal
// comparison instead of failing the run.
func (e *Engine) Match(vacancy types.Vacancy, candidate types.CandidateProfile) (*types.MatchOutcome, error) {
	if err := validateRequirements(vacancy.Requirements); err != nil {
		return nil, err
	}

	resolver, err := normalizer.New(e.snapshot, vacancy.IndustryID, parseOrgID(vacancy.OrganizationID), e.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build skill resolver: %w", err)
	}

	skills := normalizeCandidateSkills(resolver, candidate.RawSkills)
	months := e.experienceByKey(resolver, candidate.ExperienceIntervals)

	outcome := &types.MatchOutcome{
		ResumeID:      candidate.ResumeID,
		MatchedSkills: []types.SkillMatchResult{},
		MissingSkills: []types.SkillMatchResult{},
	}

	numerator := 0.0
	denominator := 0.0
	for _, req := range vacancy.Requirements {
		result := e.matchRequirement(resolver, req, skills, months)
		weight := e.cfg.weight(req.Mandatory)
		denominator += weight

		if result.Status == types.StatusMatched {
			term := weight
			if !result.MeetsExperience {
				term -= e.cfg.ExperiencePenalty * weight
				if term < 0 {
					term = 0
				}
			}
			numerator += term
			outcome.MatchedSkills = append(outcome.MatchedSkills, result)
		} else {
			outcome.MissingSkills = append(outcome.MissingSkills, result)
		}
	}

	if denominator > 0 {
		outcome.MatchPercentage = clampPercentage(numerator / denominator * 100)
	}
	outcome.OverallAssessment = e.assess(outcome.MatchPercentage)
	outcome.ExtraSkills = collectExtras(skills)

	return outcome, nil
}

// matchRequirement resolves one requirement and searches the candidate's
// skills for it. Unresolved requirements are matched only via direct literal
// comparison, never via synonym.
func (e *Engine) matchRequirement(resolver *normalizer.Resolver, req types.RequirementSpec, skills []*candidateSkill, months map[string]int) types.SkillMatchResult {
	result := types.SkillMatchResult{
		RequirementSkill:         req.Skill,
		Mandatory:                req.Mandatory,
		RequiredExperienceMonths: req.MinExperienceMonths,
	}

	res := resolver.Resolve(req.Skill)
	targetKey := taxonomy.Fold(req.Skill)
	if res.Resolved {
		targetKey = taxonomy.Fold(res.Canonical)
	}

	var found *candidateSkill
	for _, skill := range skills {
		if skill.key == targetKey {
			found = skill
			break
		}
	}

	if found == nil {
		result.Status = types.StatusMissing
		return result
	}

	found.claimed = true
	result.Status = types.StatusMatched
	if res.Resolved {
		result.CanonicalCandidateSkill = res.Canonical
	}
	result.CandidateExperienceMonths = months[targetKey]
	result.MeetsExperience = req.MinExperienceMonths == 0 ||
		result.CandidateExperienceMonths >= req.MinExperienceMonths
	return result
}

// experienceByKey aggregates interval months per normalized skill key.
// Interval labels run through the same resolver as skill mentions so synonym
// variants of one skill pool their experience.
func (e *Engine) experienceByKey(resolver *normalizer.Resolver, intervals []types.ExperienceInterval) map[string]int {
	now := e.now()
	byKey := make(map[string][]types.ExperienceInterval)
	for label, group := range experience.GroupByLabel(intervals) {
		key := label
		if res := resolver.Resolve(label); res.Resolved {
			key = taxonomy.Fold(res.Canonical)
		}
		byKey[key] = append(byKey[key], group...)
	}

	months := make(map[string]int, len(byKey))
	for key, group := range byKey {
		months[key] = experience.TotalMonths(group, now)
	}
	return months
}

// normalizeCandidateSkills resolves raw mentions and dedupes them after
// normalization. Unresolved mentions stay as candidate-only skills keyed by
// their folded raw text.
func normalizeCandidateSkills(resolver *normalizer.Resolver, rawSkills []string) []*candidateSkill {
	skills := make([]*candidateSkill, 0, len(rawSkills))
	seen := make(map[string]struct{}, len(rawSkills))
	for _, raw := range rawSkills {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		skill := &candidateSkill{display: trimmed, key: taxonomy.Fold(trimmed)}
		if res := resolver.Resolve(trimmed); res.Resolved {
			skill.display = res.Canonical
			skill.key = taxonomy.Fold(res.Canonical)
		}

		if _, exists := seen[skill.key]; exists {
			continue
		}
		seen[skill.key] = struct{}{}
		skills = append(skills, skill)
	}
	return skills
}

// collectExtras returns the sorted display names of candidate skills no
// requirement claimed.
func collectExtras(skills []*candidateSkill) []string {
	extras := make([]string, 0, len(skills))
	for _, skill := range skills {
		if !skill.claimed {
			extras = append(extras, skill.display)
		}
	}
	sort.Strings(extras)
	return extras
}

// validateRequirements rejects structurally invalid requirement specs before
// any processing.
func validateRequirements(reqs []types.RequirementSpec) error {
	for i, req := range reqs {
		if strings.TrimSpace(req.Skill) == "" {
			return &InvalidRequestError{Message: fmt.Sprintf("requirement %d has an empty skill name", i)}
		}
		if req.MinExperienceMonths < 0 {
			return &InvalidRequestError{
				Message: fmt.Sprintf("requirement %q has negative min_experience_months", req.Skill),
			}
		}
	}
	return nil
}

// assess buckets a percentage into the overall assessment.
func (e *Engine) assess(percentage float64) types.Assessment {
	switch {
	case percentage >= e.cfg.StrongThreshold:
		return types.AssessmentStrong
	case percentage >= e.cfg.PartialThreshold:
		return types.AssessmentPartial
	case percentage > 0:
		return types.AssessmentWeak
	default:
		return types.AssessmentNone
	}
}

func clampPercentage(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// parseOrgID tolerates non-UUID organization identifiers by scoping to no
// custom synonyms rather than failing the run.
func parseOrgID(raw string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil
	}
	return id
}
