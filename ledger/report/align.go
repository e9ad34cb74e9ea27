package report

// Alignment geometry shared by the aligned-row reports. A row is
// "{label} {dashes} {value}": one bounding space on each side of the dash run,
// and never fewer than two dashes.
const (
	boundingSpaces = 2
	minDashes      = 2
	minTermWidth   = 60
)

func countDigits(n int) int {
	if n < 0 {
		n = -n
	}
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}
