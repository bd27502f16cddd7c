package easel

// Option configures a Controller during creation.
//
// Example:
//
//	// Default unit window at the origin, white entities
//	ctrl := easel.NewController()
//
//	// A 10x10 world window starting at (-5, -5)
//	ctrl := easel.NewController(easel.WithWindow(easel.V2(-5, -5), easel.V2(10, 10)))
type Option func(*controllerOptions)

// controllerOptions holds optional configuration for Controller creation.
type controllerOptions struct {
	windowPos  Vec2
	windowSize Vec2
	color      string
}

// defaultControllerOptions returns the default controller options.
func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		windowPos:  Vec2{X: 0, Y: 0},
		windowSize: Vec2{X: 1, Y: 1},
		color:      "white",
	}
}

// WithWindow sets the initial world-space viewing window. The pair is also
// what ResetWindow restores.
func WithWindow(pos, size Vec2) Option {
	return func(o *controllerOptions) {
		o.windowPos = pos
		o.windowSize = size
	}
}

// WithColor sets the color token applied to newly created entities until
// the next SetColor call.
func WithColor(token string) Option {
	return func(o *controllerOptions) {
		o.color = token
	}
}
