package units

import (
	"context"
	"runtime"

	"github.com/sofmeright/extkit/src/ext"
)

func init() {
	ext.Register("toolchain", func() ext.Unit { return &toolchainUnit{} })
}

// toolchainUnit reports what built the host binary. Useful when a fixture
// run needs to prove which toolchain produced the platform artifacts.
type toolchainUnit struct{}

func (u *toolchainUnit) Name() string       { return "toolchain" }
func (u *toolchainUnit) Kind() ext.UnitKind { return ext.KindPlatform }

func (u *toolchainUnit) Ops() []ext.Op {
	return []ext.Op{
		{
			Name:  "compiler",
			Arity: 0,
			Doc:   "returns the compiler that built the host (gc, gccgo)",
			Handler: func(ctx context.Context, args []ext.Value) (ext.Value, error) {
				return ext.Text(runtime.Compiler), nil
			},
		},
		{
			Name:  "platform",
			Arity: 0,
			Doc:   "returns the GOOS/GOARCH pair of the host",
			Handler: func(ctx context.Context, args []ext.Value) (ext.Value, error) {
				return ext.Text(runtime.GOOS + "/" + runtime.GOARCH), nil
			},
		},
	}
}
