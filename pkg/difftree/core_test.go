package difftree_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/homeport/difftree/pkg/difftree"
)

// find locates the node at path by walking the tree breadth-first;
// it fails the current spec if the path is not found.
func find(root *DiffFileEntry, path string) *DiffFileEntry {
	queue := []*DiffFileEntry{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.Path == path {
			return node
		}
		queue = append(queue, node.Children...)
	}
	Fail("no node found at path " + path)
	return nil
}

var _ = Describe("BuildDiffTree", func() {
	Context("S1: empty vs non-empty", func() {
		It("reports the new file as Added and the root as Modified", func() {
			from := FileMap{}
			to := FileMap{
				"a.txt": {FileType: File, Content: "hello\nworld"},
			}

			root := BuildDiffTree(from, to, 0.7)

			Expect(root.Status).To(Equal(Modified))
			Expect(root.Children).To(HaveLen(1))

			a := find(root, "a.txt")
			Expect(a.Status).To(Equal(Added))
			Expect(a.Added).To(Equal(2))
			Expect(a.Removed).To(Equal(0))
		})
	})

	Context("S2: pure modification", func() {
		It("reports the file and root as Modified with matching counts", func() {
			from := FileMap{"x": {FileType: File, Content: "1\n2\n3"}}
			to := FileMap{"x": {FileType: File, Content: "1\n2\n4"}}

			root := BuildDiffTree(from, to, 0.7)

			x := find(root, "x")
			Expect(x.Status).To(Equal(Modified))
			Expect(x.Added).To(Equal(1))
			Expect(x.Removed).To(Equal(1))

			Expect(root.Status).To(Equal(Modified))
			Expect(root.Added).To(Equal(1))
			Expect(root.Removed).To(Equal(1))
		})
	})

	Context("S3: exact rename", func() {
		It("detects the move as a rename with no residual Removed node", func() {
			from := FileMap{"src/old.js": {FileType: File, Content: "console.log(1)"}}
			to := FileMap{"src/new.js": {FileType: File, Content: "console.log(1)"}}

			root := BuildDiffTree(from, to, 0.7)

			newFile := find(root, "src/new.js")
			Expect(newFile.Status).To(Equal(Renamed))
			Expect(newFile.OldPath).To(Equal("src/old.js"))
			Expect(newFile.Added).To(Equal(0))
			Expect(newFile.Removed).To(Equal(0))

			for _, node := range allNodes(root) {
				Expect(node.Path).NotTo(Equal("src/old.js"))
			}
		})
	})

	Context("S4: similar rename with filename boost", func() {
		It("detects a cross-directory move of a mostly-unchanged file", func() {
			lines := make([]string, 100)
			for i := range lines {
				lines[i] = "line"
			}
			original := joinLines(lines)

			modifiedLines := append([]string(nil), lines...)
			for i := 0; i < 5; i++ {
				modifiedLines[i*20] = "changed"
			}
			modified := joinLines(modifiedLines)

			from := FileMap{"a/foo.txt": {FileType: File, Content: original}}
			to := FileMap{"b/foo.txt": {FileType: File, Content: modified}}

			root := BuildDiffTree(from, to, 0.7)

			renamed := find(root, "b/foo.txt")
			Expect(renamed.Status).To(Equal(Renamed))
			Expect(renamed.OldPath).To(Equal("a/foo.txt"))

			for _, node := range allNodes(root) {
				Expect(node.Path).NotTo(Equal("a/foo.txt"))
			}
		})
	})

	Context("S5: below-threshold is not a rename", func() {
		It("leaves the two files as Added and Removed", func() {
			from := FileMap{"old.txt": {FileType: File, Content: "aaaa\nbbbb\ncccc\ndddd\neeee"}}
			to := FileMap{"new.txt": {FileType: File, Content: "zzzz\nyyyy\nxxxx\nwwww\nvvvv"}}

			root := BuildDiffTree(from, to, 0.7)

			Expect(find(root, "new.txt").Status).To(Equal(Added))
			Expect(find(root, "old.txt").Status).To(Equal(Removed))
		})
	})

	Context("S6: directory bookkeeping", func() {
		It("marks only the touched subdirectory as changed", func() {
			from := FileMap{"a/b/x": {FileType: File, Content: "1"}}
			to := FileMap{
				"a/b/x": {FileType: File, Content: "1"},
				"a/c/y": {FileType: File, Content: "2"},
			}

			root := BuildDiffTree(from, to, 0.7)

			a := find(root, "a")
			b := find(root, "a/b")
			c := find(root, "a/c")

			Expect(a.Status).To(Equal(Modified))
			Expect(a.Added).To(Equal(1))
			Expect(a.Removed).To(Equal(0))
			Expect(b.Status).To(Equal(Unchanged))
			Expect(c.Status).To(Equal(Added))
		})
	})
})

func allNodes(root *DiffFileEntry) []*DiffFileEntry {
	var out []*DiffFileEntry
	var walk func(*DiffFileEntry)
	walk = func(n *DiffFileEntry) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
