package connector

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

var globalManager = &Manager{
	providers: make(map[string]Provider),
}

// Manager is the provider registry backing Register and New.
type Manager struct {
	providers map[string]Provider
	mu        sync.RWMutex
}

// Register makes a provider available under name, replacing any previous
// registration.
func Register(name string, provider Provider) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.providers[name] = provider
}

// New returns a Connector for the named provider.
func New(name string, config Config) (Connector, error) {
	globalManager.mu.RLock()
	provider, ok := globalManager.providers[name]
	globalManager.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("provider %s not registered (have %v)", name, Providers())
	}
	return &standardConnector{provider: provider, config: config}, nil
}

// Providers lists registered provider names, sorted.
func Providers() []string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	names := make([]string, 0, len(globalManager.providers))
	for name := range globalManager.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type standardConnector struct {
	provider Provider
	config   Config
}

func (c *standardConnector) Connect(ctx context.Context) (Connection, error) {
	return c.provider.Connect(ctx, c.config)
}

func (c *standardConnector) ConnectWithRetry(ctx context.Context, retry RetryConfig) (Connection, error) {
	return retryConnect(ctx, retry, func(ctx context.Context) (Connection, error) {
		return c.provider.Connect(ctx, c.config)
	})
}
