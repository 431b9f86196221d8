package flyweight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := newConfig(defaultCacheName, nil)
	assert.Equal(t, defaultCacheName, cfg.Name)
	assert.Nil(t, cfg.Observer)
}

func TestOptionsMutateConfig(t *testing.T) {
	obs := &observerSpy{}
	cfg := newConfig(defaultCacheName, []Option{WithName("svc"), WithObserver(obs)})
	assert.Equal(t, "svc", cfg.Name)
	assert.Same(t, obs, cfg.Observer)
}
