package matching

// ScoringConfig holds the weighting and bucketing policy for match scoring.
// These are policy choices, not derived laws; callers may tune them without
// touching the algorithm.
type ScoringConfig struct {
	// MandatoryWeight and OptionalWeight set each requirement's share of the
	// score denominator.
	MandatoryWeight float64 `json:"mandatory_weight"`
	OptionalWeight  float64 `json:"optional_weight"`

	// ExperiencePenalty is the fraction of a requirement's weight subtracted
	// when the skill matched but the candidate's experience falls short. A
	// single requirement's contribution never goes below zero.
	ExperiencePenalty float64 `json:"experience_penalty"`

	// Assessment cutoffs on the 0-100 percentage.
	StrongThreshold  float64 `json:"strong_threshold"`
	PartialThreshold float64 `json:"partial_threshold"`
}

// DefaultScoringConfig returns the standard policy: mandatory requirements
// weigh twice optional ones, short experience costs half a requirement's
// weight, and the strong/partial cutoffs sit at 80 and 50.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		MandatoryWeight:   2,
		OptionalWeight:    1,
		ExperiencePenalty: 0.5,
		StrongThreshold:   80,
		PartialThreshold:  50,
	}
}

// weight returns the scoring weight for one requirement.
func (c ScoringConfig) weight(mandatory bool) float64 {
	if mandatory {
		return c.MandatoryWeight
	}
	return c.OptionalWeight
}
