package difftree_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/homeport/difftree/pkg/difftree"
)

// recomputeAdded/recomputeRemoved sum a subtree's counts independently of the
// annotator, to check the aggregation invariant from the outside.
func recomputeAdded(node *DiffFileEntry) int {
	if node.FileType == File {
		return node.Added
	}
	sum := 0
	for _, c := range node.Children {
		sum += recomputeAdded(c)
	}
	return sum
}

func recomputeRemoved(node *DiffFileEntry) int {
	if node.FileType == File {
		return node.Removed
	}
	sum := 0
	for _, c := range node.Children {
		sum += recomputeRemoved(c)
	}
	return sum
}

func assertSorted(node *DiffFileEntry) {
	for i := 1; i < len(node.Children); i++ {
		Expect(node.Children[i-1].Path < node.Children[i].Path).To(BeTrue())
	}
	for _, c := range node.Children {
		assertSorted(c)
	}
}

var sampleFrom = FileMap{
	"README.md":       {FileType: File, Content: "hello\nworld"},
	"src/main.go":     {FileType: File, Content: "package main\n\nfunc main() {}\n"},
	"src/util.go":     {FileType: File, Content: "package main\n\nfunc util() {}\n"},
	"docs/guide.md":   {FileType: File, Content: "guide content here"},
	"vendor/lib/a.go": {FileType: File, Content: "package lib\n"},
}

var sampleTo = FileMap{
	"README.md":        {FileType: File, Content: "hello\nworld\nmodified"},
	"src/main.go":      {FileType: File, Content: "package main\n\nfunc main() {}\n"},
	"src/helpers.go":   {FileType: File, Content: "package main\n\nfunc util() {}\n"},
	"docs/guide.md":    {FileType: File, Content: "guide content rewritten entirely, nothing shared"},
	"vendor/lib/a.go":  {FileType: File, Content: "package lib\n"},
	"vendor/lib/b.go":  {FileType: File, Content: "package lib\n\nfunc B() {}\n"},
}

var _ = Describe("BuildDiffTree invariants", func() {
	It("keeps every directory's Children sorted ascending by Path", func() {
		root := BuildDiffTree(sampleFrom, sampleTo, 0.7)
		assertSorted(root)
	})

	It("aggregates Added/Removed up the tree from the files at the leaves", func() {
		root := BuildDiffTree(sampleFrom, sampleTo, 0.7)
		Expect(root.Added).To(Equal(recomputeAdded(root)))
		Expect(root.Removed).To(Equal(recomputeRemoved(root)))
	})

	It("never marks a node Unchanged when it (or a descendant) actually differs", func() {
		root := BuildDiffTree(sampleFrom, sampleTo, 0.7)

		var walk func(node *DiffFileEntry)
		walk = func(node *DiffFileEntry) {
			if node.Status == Unchanged {
				Expect(node.Added).To(Equal(0))
				Expect(node.Removed).To(Equal(0))
				for _, c := range node.Children {
					Expect(c.Status).To(Equal(Unchanged))
				}
			}
			for _, c := range node.Children {
				walk(c)
			}
		}
		walk(root)
	})

	It("never maps two different added paths to the same deleted path", func() {
		root := BuildDiffTree(sampleFrom, sampleTo, 0.7)

		oldPaths := map[string]string{}
		var walk func(node *DiffFileEntry)
		walk = func(node *DiffFileEntry) {
			if node.IsRenamed() {
				if existing, ok := oldPaths[node.OldPath]; ok {
					Fail("old path " + node.OldPath + " claimed by both " + existing + " and " + node.Path)
				}
				oldPaths[node.OldPath] = node.Path
			}
			for _, c := range node.Children {
				walk(c)
			}
		}
		walk(root)
	})

	It("is deterministic across repeated calls with the same inputs", func() {
		first := BuildDiffTree(sampleFrom, sampleTo, 0.7)
		second := BuildDiffTree(sampleFrom, sampleTo, 0.7)

		var paths func(node *DiffFileEntry) []string
		paths = func(node *DiffFileEntry) []string {
			out := []string{node.Path + ":" + node.Status.String()}
			for _, c := range node.Children {
				out = append(out, paths(c)...)
			}
			return out
		}

		Expect(paths(first)).To(Equal(paths(second)))
	})

	It("reports everything Unchanged when from and to are identical (identity law)", func() {
		root := BuildDiffTree(sampleFrom, sampleFrom, 0.7)
		Expect(root.Status).To(Equal(Unchanged))
		Expect(root.Added).To(Equal(0))
		Expect(root.Removed).To(Equal(0))
	})

	It("swaps Added and Removed counts (but not which paths are touched) when from/to are swapped", func() {
		forward := BuildDiffTree(sampleFrom, sampleTo, 0.7)
		backward := BuildDiffTree(sampleTo, sampleFrom, 0.7)

		Expect(backward.Added).To(Equal(forward.Removed))
		Expect(backward.Removed).To(Equal(forward.Added))
	})

	It("clamps an out-of-range similarity threshold instead of rejecting it", func() {
		Expect(func() { BuildDiffTree(sampleFrom, sampleTo, -5) }).NotTo(Panic())
		Expect(func() { BuildDiffTree(sampleFrom, sampleTo, 5) }).NotTo(Panic())
	})
})
