package threeofnine

// DecodeOptions configures the verification scanner.
type DecodeOptions struct {
	// TryHarder scans every row instead of a sample around the middle.
	TryHarder bool
}
