package rich

import "github.com/rivo/uniseg"

// clusterEnds returns the byte offsets in b at which each grapheme
// cluster ends. Lines are only broken and text only truncated at these
// offsets so that combining sequences stay whole.
func clusterEnds(b []byte) []int {
	var ends []int
	state := -1
	n := 0
	for len(b) > 0 {
		var c []byte
		c, b, _, state = uniseg.FirstGraphemeCluster(b, state)
		n += len(c)
		ends = append(ends, n)
	}
	return ends
}

// trimLastCluster returns b without its final grapheme cluster.
func trimLastCluster(b []byte) []byte {
	ends := clusterEnds(b)
	if len(ends) < 2 {
		return b[:0]
	}
	return b[:ends[len(ends)-2]]
}

// firstClusterLen returns the byte length of the first grapheme cluster
// in b.
func firstClusterLen(b []byte) int {
	c, _, _, _ := uniseg.FirstGraphemeCluster(b, -1)
	return len(c)
}
