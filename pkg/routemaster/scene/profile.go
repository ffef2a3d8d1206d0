package scene

// SlideDirection determines where an entering scene comes from.
type SlideDirection int

const (
	// SlideFromRight slides content in from the right.
	SlideFromRight SlideDirection = iota
	// SlideFromLeft slides content in from the left.
	SlideFromLeft
	// SlideFromBottom slides content in from the bottom.
	SlideFromBottom
)

// Gesture configures an interactive, swipe-driven transition.
type Gesture struct {
	Direction    SlideDirection
	EdgeHitWidth float64 // Width of the screen edge that starts the gesture, in points
	FullDistance float64 // Fraction of the screen the gesture has to travel
	SnapVelocity float64
}

// Profile describes how a scene enters and leaves the stack.
//
// A nil Gestures map disables gesture-driven transitions entirely; navigation
// then only happens through dispatched actions.
type Profile struct {
	Name      string
	Direction SlideDirection
	Gestures  map[string]Gesture

	SpringFriction            float64
	SpringTension             float64
	DefaultTransitionVelocity float64

	Into StyleInterpolator // Scene being pushed
	Out  StyleInterpolator // Scene being covered

	// Instant marks profiles whose interpolators never change the picture.
	Instant bool
}

// GesturesEnabled reports whether any swipe gesture can drive this profile.
func (p *Profile) GesturesEnabled() bool {
	return p != nil && len(p.Gestures) > 0
}

// Animates reports whether a transition with this profile plays over time.
func (p *Profile) Animates() bool {
	return p != nil && !p.Instant
}

// PushFromRight returns a new right-to-left push profile with the
// swipe-back gesture enabled.
func PushFromRight() *Profile {
	return &Profile{
		Name:      "push-from-right",
		Direction: SlideFromRight,
		Gestures: map[string]Gesture{
			"pop": {
				Direction:    SlideFromLeft,
				EdgeHitWidth: 30,
				FullDistance: 1,
				SnapVelocity: 2,
			},
		},
		SpringFriction:            26,
		SpringTension:             200,
		DefaultTransitionVelocity: 1.5,
		Into: BuildStyleInterpolator(
			Channel{Property: PropertyTranslateX, From: 1, To: 0, Min: 0, Max: 1, Curve: EaseOut},
		),
		Out: BuildStyleInterpolator(
			Channel{Property: PropertyTranslateX, From: 0, To: -0.3, Min: -0.3, Max: 0, Curve: EaseOut},
			Channel{Property: PropertyOpacity, From: 1, To: 0.3, Min: 0.3, Max: 1},
		),
	}
}

// noTransition holds the picture still: opacity is pinned at 1 for the whole
// transition.
var noTransition = Channel{
	Property:    PropertyOpacity,
	From:        1,
	To:          1,
	Min:         1,
	Max:         1,
	Curve:       Linear,
	Extrapolate: false,
	Round:       100,
}

// DefaultProfile is used for animated navigation without a caller-supplied
// profile: push from right, no gestures.
var DefaultProfile = func() *Profile {
	p := PushFromRight()
	p.Name = "default"
	p.Gestures = nil
	return p
}()

// NoAnimation is used when a navigation asks for no animation. The scene
// appears at once and any residual interpolation completes immediately.
var NoAnimation = func() *Profile {
	p := PushFromRight()
	p.Name = "no-animation"
	p.Gestures = nil
	p.DefaultTransitionVelocity = 50
	p.Into = BuildStyleInterpolator(noTransition)
	p.Out = BuildStyleInterpolator(noTransition)
	p.Instant = true
	return p
}()
