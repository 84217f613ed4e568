package llm

import (
	"fmt"

	"lexora/internal/config"
	"lexora/internal/port"
)

// ProviderFactory is a function that creates a TextGenerator from a provider config.
type ProviderFactory func(cfg *config.ProviderConfig) (port.TextGenerator, error)

// registry of generator factories, populated explicitly via RegisterProvider
// during wiring.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a generator factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewGenerator creates a TextGenerator from a provider config using the registered factory.
func NewGenerator(cfg *config.ProviderConfig) (port.TextGenerator, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
