package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCapability(t *testing.T) {
	assert.Equal(t, CapabilityExtraction, ParseCapability("extraction"))
	assert.Equal(t, CapabilityFast, ParseCapability("fast"))
	assert.Equal(t, Capability(""), ParseCapability("bogus"))
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry(
		map[Capability]*CapabilityConfig{
			CapabilityExtraction: {
				Preferred: []string{"primary", "secondary"},
				Fallback:  []string{"backup"},
			},
		},
		map[string]*EndpointConfig{},
	)

	assert.Equal(t, "primary", r.Resolve(CapabilityExtraction))
	// Unknown capability falls back to the default model
	assert.Equal(t, "default", r.Resolve(CapabilityFast))
}

func TestRegistry_GetFallbackChain(t *testing.T) {
	r := NewRegistry(
		map[Capability]*CapabilityConfig{
			CapabilityExtraction: {
				Preferred: []string{"a", "b"},
				Fallback:  []string{"c"},
			},
		},
		map[string]*EndpointConfig{},
	)

	assert.Equal(t, []string{"a", "b", "c"}, r.GetFallbackChain(CapabilityExtraction))
}

func TestRegistry_GetEndpoint(t *testing.T) {
	r := NewRegistry(nil, map[string]*EndpointConfig{
		"local": {Provider: "ollama", URL: "http://localhost:11434/v1", Model: "gpt-oss:latest"},
	})

	ep := r.GetEndpoint("local")
	require.NotNil(t, ep)
	assert.Equal(t, "ollama", ep.Provider)
	assert.Nil(t, r.GetEndpoint("missing"))
}

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	name := r.Resolve(CapabilityExtraction)
	require.NotEmpty(t, name)

	ep := r.GetEndpoint(name)
	require.NotNil(t, ep)
	assert.Equal(t, "ollama", ep.Provider)
}

func TestRegistry_CircuitBreaker(t *testing.T) {
	r := NewRegistry(
		map[Capability]*CapabilityConfig{
			CapabilityExtraction: {Preferred: []string{"flaky", "stable"}},
		},
		map[string]*EndpointConfig{},
	)
	r.SetHealthConfig(HealthConfig{FailureThreshold: 2, RecoveryTimeout: time.Hour})

	assert.True(t, r.IsEndpointAvailable("flaky"))

	r.MarkEndpointFailure("flaky")
	assert.True(t, r.IsEndpointAvailable("flaky"), "below threshold, still available")

	r.MarkEndpointFailure("flaky")
	assert.False(t, r.IsEndpointAvailable("flaky"), "circuit should be open")

	chain := r.GetAvailableFallbackChain(CapabilityExtraction)
	assert.Equal(t, []string{"stable"}, chain)

	// Success closes the circuit again
	r.MarkEndpointSuccess("flaky")
	assert.True(t, r.IsEndpointAvailable("flaky"))
}

func TestRegistry_CircuitBreaker_HalfOpen(t *testing.T) {
	r := NewRegistry(nil, nil)
	r.SetHealthConfig(HealthConfig{FailureThreshold: 1, RecoveryTimeout: time.Millisecond})

	r.MarkEndpointFailure("m")
	require.False(t, r.IsEndpointAvailable("m"))

	time.Sleep(5 * time.Millisecond)
	assert.True(t, r.IsEndpointAvailable("m"), "recovery timeout passed, half-open probe allowed")
}

func TestRegistry_AllCircuitsOpenReturnsFullChain(t *testing.T) {
	r := NewRegistry(
		map[Capability]*CapabilityConfig{
			CapabilityExtraction: {Preferred: []string{"only"}},
		},
		map[string]*EndpointConfig{},
	)
	r.SetHealthConfig(HealthConfig{FailureThreshold: 1, RecoveryTimeout: time.Hour})
	r.MarkEndpointFailure("only")

	assert.Equal(t, []string{"only"}, r.GetAvailableFallbackChain(CapabilityExtraction),
		"with every endpoint down, trying something beats trying nothing")
}
