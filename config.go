package flyweight

const (
	defaultCacheName      = "flyweight"
	defaultDispatcherName = "dispatcher"
)

// Config controls how a Cache or Dispatcher is constructed.
type Config struct {
	// Name labels observer events, log lines and errors.
	Name string

	// Observer receives an event after every operation. Nil disables observation.
	Observer Observer
}

func (c Config) withDefaults(name string) Config {
	if c.Name == "" {
		c.Name = name
	}
	return c
}

func newConfig(name string, opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return cfg.withDefaults(name)
}
