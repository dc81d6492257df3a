package detect

import "sort"

// boldBonus folds boldness into the prominence score, so a bold run at a
// given size outranks a regular run at the same size.
const boldBonus = 2.0

// Scores closer than this are visually the same heading rank and share a
// level.
const levelMergeGap = 0.5

func prominence(size float64, bold bool) float64 {
	if bold {
		return size + boldBonus
	}
	return size
}

// assignLevels clusters candidates into raw levels by descending visual
// prominence: the most prominent style is level 1, and each style more than
// levelMergeGap below the previous one opens the next level. All candidates
// are kept; depth capping happens during tree construction.
func assignLevels(cands []Candidate) []Candidate {
	if len(cands) == 0 {
		return nil
	}

	distinct := make(map[float64]bool)
	for _, c := range cands {
		distinct[prominence(c.FontSize, c.Bold)] = true
	}

	scores := make([]float64, 0, len(distinct))
	for s := range distinct {
		scores = append(scores, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	level := 1
	levelOf := map[float64]int{scores[0]: level}
	for i := 1; i < len(scores); i++ {
		if scores[i-1]-scores[i] > levelMergeGap {
			level++
		}
		levelOf[scores[i]] = level
	}

	out := make([]Candidate, len(cands))
	for i, c := range cands {
		c.RawLevel = levelOf[prominence(c.FontSize, c.Bold)]
		out[i] = c
	}
	return out
}
