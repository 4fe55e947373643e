package normalizer

// boundedLevenshtein computes the edit distance between a and b, giving up as
// soon as the distance is guaranteed to exceed bound. Returns -1 when the
// bound is exceeded. Operates on bytes; taxonomy folding keeps inputs ASCII
// enough that this matches intuition for skill names.
func boundedLevenshtein(a, b string, bound int) int {
	if a == b {
		return 0
	}
	lenDiff := len(a) - len(b)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > bound {
		return -1
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			deletion := prev[j] + 1
			insertion := curr[j-1] + 1
			substitution := prev[j-1] + cost

			best := deletion
			if insertion < best {
				best = insertion
			}
			if substitution < best {
				best = substitution
			}
			curr[j] = best
			if best < rowMin {
				rowMin = best
			}
		}
		if rowMin > bound {
			return -1
		}
		prev, curr = curr, prev
	}

	if prev[len(b)] > bound {
		return -1
	}
	return prev[len(b)]
}
