package scene

import "math"

// Property names a visual channel a style interpolator can drive.
type Property string

const (
	PropertyOpacity    Property = "opacity"
	PropertyTranslateX Property = "translateX"
	PropertyTranslateY Property = "translateY"
	PropertyScale      Property = "scale"
)

// Style is the visual state of a scene at one point of a transition.
// Translations are fractions of the scene size.
type Style struct {
	Opacity    float64
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// IdentityStyle is a fully visible, untransformed scene.
var IdentityStyle = Style{Opacity: 1, Scale: 1}

// Channel maps transition progress onto one property.
type Channel struct {
	Property    Property
	From, To    float64
	Min, Max    float64 // Clamp bounds, applied unless Extrapolate is set
	Curve       func(float64) float64
	Extrapolate bool
	Round       float64 // Round to 1/Round steps; 0 disables rounding
}

// Value evaluates the channel at progress p in [0, 1].
func (c Channel) Value(p float64) float64 {
	curve := c.Curve
	if curve == nil {
		curve = Linear
	}

	v := c.From + (c.To-c.From)*curve(p)
	if !c.Extrapolate {
		v = math.Max(c.Min, math.Min(c.Max, v))
	}
	if c.Round > 0 {
		v = math.Round(v*c.Round) / c.Round
	}
	return v
}

// StyleInterpolator produces the style of a scene at transition progress p.
type StyleInterpolator func(p float64) Style

// BuildStyleInterpolator combines channels into a StyleInterpolator. Properties
// without a channel keep their identity value.
func BuildStyleInterpolator(channels ...Channel) StyleInterpolator {
	return func(p float64) Style {
		style := IdentityStyle
		for _, ch := range channels {
			v := ch.Value(p)
			switch ch.Property {
			case PropertyOpacity:
				style.Opacity = v
			case PropertyTranslateX:
				style.TranslateX = v
			case PropertyTranslateY:
				style.TranslateY = v
			case PropertyScale:
				style.Scale = v
			}
		}
		return style
	}
}
