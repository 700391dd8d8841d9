package flatlayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatlayer/flatlayer-go/images"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "http://localhost:8000/api", config.BaseURL)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.NotNil(t, config.Headers)
	assert.IsType(t, &NoopObserver{}, config.Observer)
}

func TestConfigBuilder(t *testing.T) {
	config := DefaultConfig().
		WithBaseURL("https://cms.example.com/api/").
		WithImageEndpoint("https://cdn.example.com/img").
		WithTimeout(10 * time.Second).
		WithHeader("X-API-Key", "secret").
		WithBreakpoints(map[string]int{"tablet": 900}).
		WithDefaultTransform(images.Transform{"q": 80})

	assert.Equal(t, "https://cms.example.com/api", config.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, "https://cdn.example.com/img", config.ImageEndpoint)
	assert.Equal(t, 10*time.Second, config.Timeout)
	assert.Equal(t, "secret", config.Headers["X-API-Key"])
	assert.Equal(t, map[string]int{"tablet": 900}, config.Breakpoints)
	assert.Equal(t, images.Transform{"q": 80}, config.DefaultTransform)
}

func TestConfigValidate(t *testing.T) {
	t.Run("missing base URL", func(t *testing.T) {
		err := (&Config{}).Validate()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("fills defaults", func(t *testing.T) {
		config := &Config{BaseURL: "https://cms.example.com/api"}
		require.NoError(t, config.Validate())
		assert.Equal(t, "https://cms.example.com/api/image", config.ImageEndpoint)
		assert.Equal(t, 30*time.Second, config.Timeout)
		assert.Equal(t, 100, config.TransportConfig.MaxIdleConns)
		assert.Equal(t, 10, config.TransportConfig.MaxConnsPerHost)
		assert.Equal(t, 90*time.Second, config.TransportConfig.IdleConnTimeout)
		assert.NotNil(t, config.Observer)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		config := DefaultConfig().
			WithBaseURL("https://cms.example.com/api").
			WithImageEndpoint("https://cdn.example.com/img").
			WithTimeout(5 * time.Second)
		require.NoError(t, config.Validate())
		assert.Equal(t, "https://cdn.example.com/img", config.ImageEndpoint)
		assert.Equal(t, 5*time.Second, config.Timeout)
	})
}

func TestWithHeaderNilMap(t *testing.T) {
	config := &Config{BaseURL: "https://cms.example.com"}
	config.WithHeader("X-Tenant", "t1")
	assert.Equal(t, "t1", config.Headers["X-Tenant"])
}
