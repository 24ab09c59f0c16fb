package palette

// Distance sums the per channel absolute differences. Hue is compared
// linearly, so 359 and 1 are 358 apart.
func Distance(a, b Color) int {
	return abs(a.Hue-b.Hue) + abs(a.Saturation-b.Saturation) + abs(a.Lightness-b.Lightness)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
