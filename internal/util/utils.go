package util

// CalculateAverage returns the arithmetic mean of the values, or 0 when there
// are none.
func CalculateAverage(values map[string]int) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// Ratio divides a by b, returning 0 for a zero denominator.
func Ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
