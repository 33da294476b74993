package units

import (
	"context"

	"github.com/sofmeright/extkit/src/ext"
)

func init() {
	ext.Register("extmod", func() ext.Unit { return &extmodUnit{} })
}

// extmodUnit mimics a platform extension nested inside a larger package
// tree. Behaviorally identical to plat under a different name.
type extmodUnit struct{}

func (u *extmodUnit) Name() string       { return "extmod" }
func (u *extmodUnit) Kind() ext.UnitKind { return ext.KindPlatform }

func (u *extmodUnit) Ops() []ext.Op {
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
