package ext

import (
	"context"
	"fmt"
)

// Handler is the function body of an operation. Arity is already checked
// when a handler runs; len(args) always equals the declared arity.
type Handler func(ctx context.Context, args []Value) (Value, error)

// Op is a single operation exposed by a unit.
type Op struct {
	Name    string
	Arity   int
	Doc     string
	Handler Handler
}

// Call invokes the operation, enforcing the declared arity first. This is
// the only dispatch path; units never receive a mis-sized argument list.
func (o Op) Call(ctx context.Context, args []Value) (Value, error) {
	if len(args) != o.Arity {
		return None(), fmt.Errorf("%w: %s takes %d argument(s), got %d",
			ErrArity, o.Name, o.Arity, len(args))
	}
	return o.Handler(ctx, args)
}

// IntArgs unpacks args into int64s, erroring on any non-int value.
// Helper for units whose operations take numeric arguments.
func IntArgs(opName string, args []Value) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.Int()
		if !ok {
			return nil, fmt.Errorf("ext: %s: argument %d must be int, got %s",
				opName, i, a.Kind())
		}
		out[i] = n
	}
	return out, nil
}
