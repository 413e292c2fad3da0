package model

// Decorator adjusts a model after it has been built and before it is
// rendered, e.g. to rename definitions or hide properties.
type Decorator interface {
	Decorate(*Model) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Model) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(m *Model) error {
	return fn(m)
}
