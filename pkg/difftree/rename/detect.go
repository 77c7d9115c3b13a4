// Copyright © 2025 The Homeport Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package rename

// SimilarityFunc computes the line-level diff similarity between two file
// contents, as a fraction in [0, 1]. difftree supplies its own
// implementation; this package stays agnostic of how it is computed so it
// can be unit-tested against fakes.
type SimilarityFunc func(from, to string) float64

// Detect returns a mapping from an added path to the deleted path it was
// matched to as a rename, following a two-phase cascade:
//
//  1. exact content match, grouped by content hash and confirmed by
//     byte-equality;
//  2. similarity match, filtered by a length-ratio prefilter, then a
//     Jaccard-on-line-sets prefilter, then the full diff-based similarity
//     score with a same-filename boost.
//
// deleted and added must already be in a stable, deterministic order (the
// orchestrator sorts them ascending by path) since ties during Phase 2 are
// broken by "first candidate encountered".
func Detect(
	deleted, added []string,
	fromContent, toContent ContentLookup,
	sim SimilarityFunc,
	opts DetectOptions,
) map[string]string {
	threshold := opts.Threshold
	renames := make(map[string]string)
	used := make(map[string]bool, len(deleted))

	phaseExactMatch(deleted, added, fromContent, toContent, renames, used)
	phaseSimilarityMatch(deleted, added, fromContent, toContent, sim, threshold, renames, used)

	return renames
}

// phaseExactMatch is Phase 1: hash deleted file contents into buckets, then
// for each added path look for the first not-yet-used candidate in its
// bucket whose bytes are actually equal.
func phaseExactMatch(
	deleted, added []string,
	fromContent, toContent ContentLookup,
	renames map[string]string,
	used map[string]bool,
) {
	buckets := make(map[uint64][]string)
	for _, delPath := range deleted {
		content, ok := fromContent(delPath)
		if !ok {
			continue
		}
		h := contentHash(content)
		buckets[h] = append(buckets[h], delPath)
	}

	for _, addPath := range added {
		addContent, ok := toContent(addPath)
		if !ok {
			continue
		}
		h := contentHash(addContent)

		for _, delPath := range buckets[h] {
			if used[delPath] {
				continue
			}
			delContent, ok := fromContent(delPath)
			if !ok {
				continue
			}
			if delContent == addContent {
				renames[addPath] = delPath
				used[delPath] = true
				break
			}
		}
	}
}

// phaseSimilarityMatch is Phase 2: for each still-unmatched added path, find
// the best still-unused deleted path via the length-ratio / Jaccard / diff
// similarity / filename-boost filter cascade.
func phaseSimilarityMatch(
	deleted, added []string,
	fromContent, toContent ContentLookup,
	sim SimilarityFunc,
	threshold float64,
	renames map[string]string,
	used map[string]bool,
) {
	delLineSets := make(map[string]map[string]struct{}, len(deleted))
	for _, delPath := range deleted {
		if used[delPath] {
			continue
		}
		content, ok := fromContent(delPath)
		if !ok {
			continue
		}
		delLineSets[delPath] = lineSet(content)
	}

	jaccardFloor := threshold * 0.7

	for _, addPath := range added {
		if _, alreadyRenamed := renames[addPath]; alreadyRenamed {
			continue
		}
		addContent, ok := toContent(addPath)
		if !ok {
			continue
		}
		addLines := lineSet(addContent)
		addName := name(addPath)

		var bestPath string
		var bestScore float64
		haveBest := false

		for _, delPath := range deleted {
			if used[delPath] {
				continue
			}
			delContent, ok := fromContent(delPath)
			if !ok {
				continue
			}

			if !lengthRatioOK(delContent, addContent, threshold) {
				continue
			}

			if jaccard(addLines, delLineSets[delPath]) < jaccardFloor {
				continue
			}

			score := sim(delContent, addContent)
			if name(delPath) == addName {
				score *= 1.2
			}

			if score < threshold {
				continue
			}

			if !haveBest || score > bestScore {
				bestPath, bestScore, haveBest = delPath, score, true
			}
		}

		if haveBest {
			renames[addPath] = bestPath
			used[bestPath] = true
		}
	}
}

// lengthRatioOK is the Phase 2 length-ratio prefilter: reject a candidate
// pair whose content lengths differ by more than 1/threshold in either
// direction.
func lengthRatioOK(from, to string, threshold float64) bool {
	toLen := len(to)
	if toLen == 0 {
		toLen = 1
	}
	r := float64(len(from)) / float64(toLen)
	return r >= threshold && r <= 1/threshold
}

// lineSet returns the set of distinct lines in content, split on "\n".
func lineSet(content string) map[string]struct{} {
	lines := splitLines(content)
	set := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		set[l] = struct{}{}
	}
	return set
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	lines = append(lines, content[start:])
	return lines
}

// jaccard computes |a∩b| / |a∪b| over two line sets. Two empty sets match
// as 1.0; an empty union yields 0.0.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	intersection := 0
	for l := range a {
		if _, ok := b[l]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}
