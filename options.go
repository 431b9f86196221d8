package flyweight

// Option mutates Config when constructing a Cache or Dispatcher.
type Option func(Config) Config

// WithName sets the label used in observer events and errors.
func WithName(name string) Option {
	return func(cfg Config) Config {
		cfg.Name = name
		return cfg
	}
}

// WithObserver attaches an observer. Repeated use fans events out to every observer
// in registration order.
func WithObserver(o Observer) Option {
	return func(cfg Config) Config {
		if o == nil {
			return cfg
		}
		if cfg.Observer == nil {
			cfg.Observer = o
			return cfg
		}
		cfg.Observer = MultiObserver(cfg.Observer, o)
		return cfg
	}
}
