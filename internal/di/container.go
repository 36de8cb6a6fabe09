// Package di provides a minimal string-keyed service container.
package di

import (
	"fmt"
	"sync"
)

// ServiceRegistry is the read side of the container.
type ServiceRegistry interface {
	// Get returns a registered service or nil if absent.
	Get(token string) any
	// MustGet returns a registered service, panicking if absent.
	MustGet(token string) any
}

// Container registers and resolves services by token.
type Container interface {
	ServiceRegistry
	// Register stores a service under a token. Re-registering a token panics.
	Register(token string, service any)
}

type container struct {
	mu       sync.RWMutex
	services map[string]any
}

// NewContainer creates an empty container.
func NewContainer() Container {
	return &container{
		services: make(map[string]any),
	}
}

func (c *container) Register(token string, service any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.services[token]; exists {
		panic(fmt.Sprintf("di: %q already registered", token))
	}
	c.services[token] = service
}

func (c *container) Get(token string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.services[token]
}

func (c *container) MustGet(token string) any {
	svc := c.Get(token)
	if svc == nil {
		panic(fmt.Sprintf("di: %q not registered", token))
	}
	return svc
}
