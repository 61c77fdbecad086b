package match

import "math"

// Scores are expressed two ways. The sliding-window and sequence ratios run
// on a 0..100 scale while candidates are being screened, matching the usual
// fuzzy-matching convention. Reported Result values are normalized to [0,1]
// and rounded to three decimals.

// partialSimilarity slides the shorter string across the longer one, runewise,
// and returns the best alignment ratio on a 0..100 scale. Every offset is
// tried, including ones where the shorter string overhangs an end. The
// denominator is always the combined length, so a length mismatch caps the
// attainable ratio even on a perfect substring hit.
func partialSimilarity(a, b []rune) float64 {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100
		}
		return 0
	}

	total := len(a) + len(b)
	best := 0
	for offset := -(len(short) - 1); offset < len(long); offset++ {
		matched := 0
		for i, r := range short {
			j := i + offset
			if j < 0 || j >= len(long) {
				continue
			}
			if long[j] == r {
				matched++
			}
		}
		if matched > best {
			best = matched
			if best == len(short) {
				break
			}
		}
	}
	return 2 * float64(best) / float64(total) * 100
}

// sequenceRatio is the matching-blocks ratio on a 0..100 scale. Unlike the
// sliding alignment it rewards shared subsequences that are not contiguous
// at a single offset.
func sequenceRatio(a, b []rune) float64 {
	return newSequenceMatcher(a, b).ratio() * 100
}

// combineScores folds the two 0..100 ratios into the reported similarity:
// the sequence ratio carries twice the weight of the sliding alignment, and
// the result lands in [0,1] rounded to three decimals.
func combineScores(partial, seq float64) float64 {
	return round3((partial + 2*seq) / 300)
}

// equalityScore is the length agreement between two strings: shorter length
// over longer length, zero when either is empty. It breaks ranking ties
// between candidates of identical similarity.
func equalityScore(a, b []rune) float64 {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	if la > lb {
		la, lb = lb, la
	}
	return round3(float64(la) / float64(lb))
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
