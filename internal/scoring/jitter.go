package scoring

import "hash/fnv"

// Jitter maps text to a stable value in [-r, r]. It exists only so that
// near-identical texts don't render identical scores side by side; it is a
// pure function of the text, never of time or call order. A zero range
// disables it.
func Jitter(text string, r int) int {
	if r <= 0 || text == "" {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return int(h.Sum32()%uint32(2*r+1)) - r
}
