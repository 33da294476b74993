// Package units contains the built-in extension units. Each unit
// registers itself with the ext registry from init(), mirroring how a
// native extension announces itself to its loader.
package units

import (
	"context"

	"github.com/sofmeright/extkit/src/ext"
)

func init() {
	ext.Register("plat", func() ext.Unit { return &platUnit{} })
}

// platUnit is the canonical platform fixture: one zero-argument
// operation returning a constant.
type platUnit struct{}

func (u *platUnit) Name() string       { return "plat" }
func (u *platUnit) Kind() ext.UnitKind { return ext.KindPlatform }

func (u *platUnit) Ops() []ext.Op {
	return []ext.Op{
		{
			Name:  "foo",
			Arity: 0,
			Doc:   `returns the constant "bar"`,
			Handler: func(ctx context.Context, args []ext.Value) (ext.Value, error) {
				return ext.Text("bar"), nil
			},
		},
	}
}
