package theme

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color parses the value stored for role. Values that are not valid hex
// colors resolve to the role's default.
func (c Colors) Color(role Role) colorful.Color {
	if v := c.Get(role); ValidHex(v) {
		if col, err := colorful.Hex(v); err == nil {
			return col
		}
	}
	col, _ := colorful.Hex(Defaults().Get(role))
	return col
}

// Hex is Color formatted as #rrggbb.
func (c Colors) Hex(role Role) string {
	return c.Color(role).Hex()
}

// GradientAt samples the from/via/to row gradient at t in [0, 1].
func (c Colors) GradientAt(t float64) colorful.Color {
	return Blend(
		c.Color(RoleTableGradientFrom),
		c.Color(RoleTableGradientVia),
		c.Color(RoleTableGradientTo),
		t,
	)
}

// Blend interpolates a three-stop gradient in RGB, with via at the midpoint.
func Blend(from, via, to colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	case t < 0.5:
		return from.BlendRgb(via, t*2).Clamped()
	default:
		return via.BlendRgb(to, (t-0.5)*2).Clamped()
	}
}
