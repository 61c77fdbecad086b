package match

import "sort"

// UntrackedIndex marks a Result whose corpus position is unknown because the
// matcher was built without origin tracking.
const UntrackedIndex = -1

// Result is one ranked match against the corpus.
type Result struct {
	// Index is the position of the matched string in the raw input slice,
	// or UntrackedIndex when origin tracking is off. Duplicate raw inputs
	// produce one Result per occurrence.
	Index int `json:"index"`

	// Text is the matched corpus string, post-preprocessing.
	Text string `json:"text"`

	// Similarity is the combined score in [0,1], rounded to three decimals.
	Similarity float64 `json:"similarity"`

	// Equality is the length-agreement tiebreak score in [0,1].
	Equality float64 `json:"equality"`
}

// scoredMatch is a candidate that survived the soft cutoff, before origin
// expansion turns it into one or more Results.
type scoredMatch struct {
	text       string
	similarity float64
	equality   float64
}

// rankMatches orders candidates by similarity descending, equality breaking
// ties. The sort is stable, so candidates tied on both scores keep their
// corpus order, which is itself deterministic.
func rankMatches(scored []scoredMatch) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].similarity != scored[j].similarity {
			return scored[i].similarity > scored[j].similarity
		}
		return scored[i].equality > scored[j].equality
	})
}

// expandOrigins converts ranked candidates to Results, emitting one Result
// per raw-input occurrence in ascending input order. Expansion happens
// before any top-k truncation, so a duplicated string can occupy several
// of the top slots.
func expandOrigins(scored []scoredMatch, origins map[string][]int) []Result {
	results := make([]Result, 0, len(scored))
	for _, s := range scored {
		for _, idx := range origins[s.text] {
			results = append(results, Result{
				Index:      idx,
				Text:       s.text,
				Similarity: s.similarity,
				Equality:   s.equality,
			})
		}
	}
	return results
}

// toResults converts ranked candidates to Results without origin data.
func toResults(scored []scoredMatch) []Result {
	results := make([]Result, len(scored))
	for i, s := range scored {
		results[i] = Result{
			Index:      UntrackedIndex,
			Text:       s.text,
			Similarity: s.similarity,
			Equality:   s.equality,
		}
	}
	return results
}

// truncateTopK keeps the first k results. k <= 0 means unlimited.
func truncateTopK(results []Result, k int) []Result {
	if k <= 0 || len(results) <= k {
		return results
	}
	return results[:k]
}
