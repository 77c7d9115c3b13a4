package difftree

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("deriveDirectories", func() {
	It("derives every ancestor directory of a deeply nested file", func() {
		dirs := deriveDirectories(FileMap{
			"a/b/c/d.txt": {FileType: File, Content: "x"},
		})

		Expect(dirs.has("a")).To(BeTrue())
		Expect(dirs.has("a/b")).To(BeTrue())
		Expect(dirs.has("a/b/c")).To(BeTrue())
		Expect(dirs.has("a/b/c/d.txt")).To(BeFalse())
	})

	It("includes an explicitly listed empty directory", func() {
		dirs := deriveDirectories(FileMap{
			"empty/dir": {FileType: Directory},
		})

		Expect(dirs.has("empty/dir")).To(BeTrue())
		Expect(dirs.has("empty")).To(BeTrue())
	})

	It("derives nothing for a top-level file", func() {
		dirs := deriveDirectories(FileMap{
			"top.txt": {FileType: File, Content: "x"},
		})

		Expect(dirs.has("top.txt")).To(BeFalse())
		Expect(len(dirs)).To(Equal(0))
	})
})
