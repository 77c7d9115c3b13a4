package rename

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("contentHash", func() {
	It("is deterministic for identical content", func() {
		Expect(contentHash("hello world")).To(Equal(contentHash("hello world")))
	})

	It("differs for different content", func() {
		Expect(contentHash("hello world")).NotTo(Equal(contentHash("hello there")))
	})
})
