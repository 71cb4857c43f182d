// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// Partition splits [0, total) into parts contiguous ranges and returns the
// half-open range [lo, hi) owned by part. The first total%parts ranges are
// one element longer. Ranges may be empty when parts > total.
func Partition(total, parts, part int) (lo, hi int) {
	if total <= 0 || parts <= 0 || part < 0 || part >= parts {
		return 0, 0
	}
	size, rem := total/parts, total%parts
	lo = part*size + min(part, rem)
	hi = lo + size
	if part < rem {
		hi++
	}
	return lo, hi
}
