package units

import (
	"context"

	"github.com/sofmeright/extkit/src/ext"
)

func init() {
	ext.Register("pure", func() ext.Unit { return &pureUnit{} })
}

// pureUnit is the pure counterpart of plat: same contract, no platform
// dependence.
type pureUnit struct{}

func (u *pureUnit) Name() string       { return "pure" }
func (u *pureUnit) Kind() ext.UnitKind { return ext.KindPure }

func (u *pureUnit) Ops() []ext.Op {
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
