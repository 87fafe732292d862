package canvas

// Option configures a Surface during creation.
// Use functional options to customize Surface behavior.
//
// Example:
//
//	// Default software target
//	s := canvas.New(800, 600)
//
//	// Custom target (dependency injection)
//	s := canvas.New(800, 600, canvas.WithTarget(target))
type Option func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	target Target
}

// defaultOptions returns the default surface options.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		target: nil,
	}
}

// WithTarget binds the surface to an existing target instead of creating a
// fresh software one. Use this for dependency injection of recording or
// custom raster targets.
//
// Example:
//
//	rt := record.NewTarget()
//	s := canvas.New(0, 0, canvas.WithTarget(rt))
func WithTarget(t Target) Option {
	return func(o *surfaceOptions) {
		o.target = t
	}
}
