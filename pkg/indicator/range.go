package indicator

// NonZeroRange returns a[i]-b[i], substituting 1 wherever the difference is
// exactly zero so the result is safe to divide by. The substitute is an
// approximation: a flat bar is treated as a range of one price unit.
func NonZeroRange(a, b []float64) ([]float64, error) {
	if err := VerifyAligned(a, b); err != nil {
		return nil, err
	}

	result := make([]float64, len(a))
	for i := range a {
		if d := a[i] - b[i]; d != 0 {
			result[i] = d
		} else {
			result[i] = 1
		}
	}

	return result, nil
}
