package di

import (
	"fmt"
	"sync"
)

// Token is a typed handle for a registered service.
type Token[T any] struct {
	name string
}

// NewToken creates a typed token with a unique name.
func NewToken[T any](name string) Token[T] {
	return Token[T]{name: name}
}

// Name returns the token's registry key.
func (t Token[T]) Name() string {
	return t.name
}

// lazyService defers construction until first resolution.
type lazyService struct {
	once    sync.Once
	factory func(ServiceRegistry) any
	value   any
}

func (l *lazyService) resolve(sr ServiceRegistry) any {
	l.once.Do(func() {
		l.value = l.factory(sr)
	})
	return l.value
}

// RegisterToken registers a lazily-constructed service under a typed token.
// The factory runs once, on first resolution.
func RegisterToken[T any](c Container, token Token[T], factory func(ServiceRegistry) T) {
	c.Register(token.name, &lazyService{
		factory: func(sr ServiceRegistry) any { return factory(sr) },
	})
}

// GetToken resolves a typed token, constructing the service if needed.
// Panics if the token is unregistered or the stored value has the wrong type.
func GetToken[T any](sr ServiceRegistry, token Token[T]) T {
	entry := sr.MustGet(token.name)

	if lazy, ok := entry.(*lazyService); ok {
		entry = lazy.resolve(sr)
	}

	value, ok := entry.(T)
	if !ok {
		panic(fmt.Sprintf("di: %q has unexpected type %T", token.name, entry))
	}
	return value
}
