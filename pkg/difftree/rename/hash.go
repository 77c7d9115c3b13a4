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

import "github.com/mitchellh/hashstructure"

// contentHash computes a deterministic 64-bit hash of a file's content for
// the rename detector's Phase 1 exact-match bucketing. Any deterministic
// 64-bit hash is sufficient here since collisions are always resolved by an
// explicit byte-equality check before a match is committed; hashstructure is
// already part of this codebase's dependency stack, so it is reused here
// rather than reaching for a new hashing library.
func contentHash(content string) uint64 {
	h, err := hashstructure.Hash(content, nil)
	if err != nil {
		// hashstructure.Hash only fails on unsupported field types (channels,
		// funcs); a string can never trigger that path.
		panic("rename: hashing a string content value cannot fail: " + err.Error())
	}
	return h
}
