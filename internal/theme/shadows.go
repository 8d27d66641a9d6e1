package theme

import (
	"fmt"
	"math"
)

const (
	shadowRampStart   = 3
	shadowBaseOpacity = 0.2
	shadowOpacityStep = 0.05
	shadowMaxOpacity  = 1.0
)

// buildShadows returns the elevation sequence. Level 0 is "none", levels 1
// and 2 are hairlines in the border color, and from level 3 every pair of
// levels shares an offset while the black opacity keeps rising until it
// saturates.
func buildShadows(border string) Shadows {
	var shadows Shadows
	shadows[0] = "none"
	shadows[1] = "0 1px 0 " + border
	shadows[2] = fmt.Sprintf("0 1px 0 %s, 0 1px 3px %s", border, WithAlpha("#000", 0.12))
	for level := shadowRampStart; level < ShadowCount; level++ {
		step := level - shadowRampStart
		offset := 8 + 4*(step/2)
		opacity := math.Min(shadowBaseOpacity+shadowOpacityStep*float64(step), shadowMaxOpacity)
		opacity = math.Round(opacity*100) / 100
		shadows[level] = fmt.Sprintf("0 %dpx %dpx %s", offset, offset+16, WithAlpha("#000", opacity))
	}
	return shadows
}
