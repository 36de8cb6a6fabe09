// Package product provides a registry of SimCompanies exchange resources.
package product

// Product represents the metadata of a tradable SimCompanies resource.
// It is a reference entity with stable identity (resource ID).
// The name is NOT identity - just metadata for display.
type Product struct {
	id        int
	name      string
	transport float64 // transport units consumed per item shipped
}

// New creates a new Product with the given parameters.
func New(id int, name string, transport float64) *Product {
	if id <= 0 {
		panic("product: non-positive resource id")
	}
	if name == "" {
		panic("product: empty name")
	}
	if transport < 0 {
		panic("product: negative transport weight")
	}

	return &Product{
		id:        id,
		name:      name,
		transport: transport,
	}
}

// ID returns the exchange resource ID used by the market API.
func (p *Product) ID() int {
	return p.id
}

// Name returns the human-readable name (e.g., "Apples").
func (p *Product) Name() string {
	return p.name
}

// TransportWeight returns the transport units consumed per item shipped.
func (p *Product) TransportWeight() float64 {
	return p.transport
}

// String returns a human-readable representation.
func (p *Product) String() string {
	return p.name
}

// Equals compares two Products by their resource ID.
func (p *Product) Equals(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.id == other.id
}
