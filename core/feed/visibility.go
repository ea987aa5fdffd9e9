// ABOUTME: Visibility ratios computed from item geometry and the viewport
// ABOUTME: Keeps active-item selection independent of any rendering platform

package feed

// Viewport is the visible window of the scroll container
type Viewport struct {
	Top    float64
	Height float64
}

// ItemGeometry is the rendered position of one feed item
type ItemGeometry struct {
	ID     string
	Top    float64
	Height float64
}

// ComputeVisibilityRatios maps each item ID to the fraction of its height inside the viewport
func ComputeVisibilityRatios(viewport Viewport, geoms []ItemGeometry) map[string]float64 {
	ratios := make(map[string]float64, len(geoms))
	for _, g := range geoms {
		ratios[g.ID] = visibleRatio(viewport, g)
	}
	return ratios
}

func visibleRatio(viewport Viewport, g ItemGeometry) float64 {
	if g.Height <= 0 || viewport.Height <= 0 {
		return 0
	}

	top := maxFloat(viewport.Top, g.Top)
	bottom := minFloat(viewport.Top+viewport.Height, g.Top+g.Height)
	if bottom <= top {
		return 0
	}

	ratio := (bottom - top) / g.Height
	if ratio > 1 {
		return 1
	}
	return ratio
}

// ratiosInOrder lines ratios up with the item order; missing IDs count as invisible
func ratiosInOrder(ids []string, ratios map[string]float64) []float64 {
	ordered := make([]float64, len(ids))
	for i, id := range ids {
		ordered[i] = ratios[id]
	}
	return ordered
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
