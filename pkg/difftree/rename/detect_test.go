package rename_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/homeport/difftree/pkg/difftree/rename"
)

func lookup(m map[string]string) ContentLookup {
	return func(path string) (string, bool) {
		content, ok := m[path]
		return content, ok
	}
}

var _ = Describe("Detect", func() {
	It("matches byte-identical content in Phase 1 regardless of similarity scoring", func() {
		deleted := []string{"old/a.txt"}
		added := []string{"new/a.txt"}

		from := lookup(map[string]string{"old/a.txt": "identical content"})
		to := lookup(map[string]string{"new/a.txt": "identical content"})

		// A similarity function that always returns 0 must not prevent the
		// Phase 1 exact match from firing.
		sim := func(string, string) float64 { return 0 }

		renames := Detect(deleted, added, from, to, sim, DetectOptions{Threshold: 0.7})

		Expect(renames).To(HaveKeyWithValue("new/a.txt", "old/a.txt"))
	})

	It("picks the first unused candidate in a content-hash collision bucket", func() {
		deleted := []string{"a", "b"}
		added := []string{"x"}

		from := lookup(map[string]string{"a": "same", "b": "same"})
		to := lookup(map[string]string{"x": "same"})

		sim := func(string, string) float64 { return 0 }

		renames := Detect(deleted, added, from, to, sim, DetectOptions{Threshold: 0.7})

		Expect(renames).To(HaveKeyWithValue("x", "a"))
		Expect(renames).To(HaveLen(1))
	})

	It("falls through to Phase 2 when content differs, accepting a candidate at or above threshold", func() {
		deleted := []string{"old/file.go"}
		added := []string{"new/file.go"}

		from := lookup(map[string]string{"old/file.go": "aaaa\nbbbb\ncccc"})
		to := lookup(map[string]string{"new/file.go": "aaaa\nbbbb\ndddd"})

		sim := func(a, b string) float64 { return 0.8 }

		renames := Detect(deleted, added, from, to, sim, DetectOptions{Threshold: 0.7})

		Expect(renames).To(HaveKeyWithValue("new/file.go", "old/file.go"))
	})

	It("rejects a candidate pair whose similarity is below threshold", func() {
		deleted := []string{"old/file.go"}
		added := []string{"new/file.go"}

		from := lookup(map[string]string{"old/file.go": "aaaa\nbbbb\ncccc"})
		to := lookup(map[string]string{"new/file.go": "aaaa\nbbbb\ndddd"})

		sim := func(a, b string) float64 { return 0.5 }

		renames := Detect(deleted, added, from, to, sim, DetectOptions{Threshold: 0.7})

		Expect(renames).To(BeEmpty())
	})

	It("rejects candidates whose content length ratio falls outside the threshold bound", func() {
		deleted := []string{"old/short.txt"}
		added := []string{"new/long.txt"}

		from := lookup(map[string]string{"old/short.txt": "x"})
		to := lookup(map[string]string{"new/long.txt": "this content is vastly longer than the original by far"})

		// Similarity would accept unconditionally, but the length-ratio
		// prefilter must still reject before sim is ever consulted.
		sim := func(a, b string) float64 { return 1.0 }

		renames := Detect(deleted, added, from, to, sim, DetectOptions{Threshold: 0.9})

		Expect(renames).To(BeEmpty())
	})

	It("rejects candidates with no line overlap via the Jaccard prefilter", func() {
		deleted := []string{"old/file.txt"}
		added := []string{"new/file.txt"}

		from := lookup(map[string]string{"old/file.txt": "aaaa\nbbbb\ncccc\ndddd\neeee"})
		to := lookup(map[string]string{"new/file.txt": "zzzz\nyyyy\nxxxx\nwwww\nvvvv"})

		// A similarity function that would otherwise accept; the Jaccard
		// floor must reject first since the two files share no lines.
		sim := func(a, b string) float64 { return 1.0 }

		renames := Detect(deleted, added, from, to, sim, DetectOptions{Threshold: 0.7})

		Expect(renames).To(BeEmpty())
	})

	It("applies a same-filename boost that can push a borderline score over threshold", func() {
		deleted := []string{"a/foo.txt"}
		added := []string{"b/foo.txt"}

		from := lookup(map[string]string{"a/foo.txt": "one\ntwo\nthree\nfour\nfive"})
		to := lookup(map[string]string{"b/foo.txt": "one\ntwo\nthree\nfour\nsix"})

		// Raw score sits just under threshold; the same-filename boost
		// (x1.2) must be what pushes it over.
		sim := func(a, b string) float64 { return 0.65 }

		renames := Detect(deleted, added, from, to, sim, DetectOptions{Threshold: 0.7})

		Expect(renames).To(HaveKeyWithValue("b/foo.txt", "a/foo.txt"))
	})

	It("picks the best-scoring candidate among several above threshold", func() {
		deleted := []string{"old/a.txt", "old/b.txt"}
		added := []string{"new/x.txt"}

		from := lookup(map[string]string{
			"old/a.txt": "one\ntwo\nthree\nfour",
			"old/b.txt": "one\ntwo\nthree\nfive",
		})
		to := lookup(map[string]string{"new/x.txt": "one\ntwo\nthree\nsix"})

		sim := func(a, b string) float64 {
			if a == "one\ntwo\nthree\nfour" {
				return 0.75
			}
			return 0.9
		}

		renames := Detect(deleted, added, from, to, sim, DetectOptions{Threshold: 0.7})

		Expect(renames).To(HaveKeyWithValue("new/x.txt", "old/b.txt"))
	})

	It("never matches the same deleted path to two different added paths", func() {
		deleted := []string{"old/shared.txt"}
		added := []string{"new/one.txt", "new/two.txt"}

		from := lookup(map[string]string{"old/shared.txt": "one\ntwo\nthree\nfour"})
		to := lookup(map[string]string{
			"new/one.txt": "one\ntwo\nthree\nfive",
			"new/two.txt": "one\ntwo\nthree\nsix",
		})

		sim := func(a, b string) float64 { return 0.9 }

		renames := Detect(deleted, added, from, to, sim, DetectOptions{Threshold: 0.7})

		Expect(renames).To(HaveLen(1))

		usedDeleted := map[string]bool{}
		for _, from := range renames {
			usedDeleted[from] = true
		}
		Expect(usedDeleted).To(HaveLen(1))
	})
})
