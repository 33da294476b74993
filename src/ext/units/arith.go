package units

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sofmeright/extkit/src/ext"
)

const defaultMaxOperand = 1 << 31

func init() {
	ext.Register("arith", func() ext.Unit {
		return &arithUnit{cfg: arithConfig{MaxOperand: defaultMaxOperand}}
	})
}

type arithConfig struct {
	MaxOperand int64 `json:"max_operand"`
}

// arithUnit exposes a two-argument integer operation, exercising the
// non-trivial side of the calling convention: fixed arity above zero and
// typed arguments.
type arithUnit struct {
	cfg arithConfig
}

func (u *arithUnit) Name() string       { return "arith" }
func (u *arithUnit) Kind() ext.UnitKind { return ext.KindPlatform }

// Configure implements ext.Configurable.
func (u *arithUnit) Configure(opts map[string]any) error {
	cfg := arithConfig{MaxOperand: defaultMaxOperand}
	if len(opts) != 0 {
		b, err := json.Marshal(opts)
		if err != nil {
			return fmt.Errorf("arith: marshal options: %w", err)
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return fmt.Errorf("arith: unmarshal options: %w", err)
		}
	}
	if cfg.MaxOperand <= 0 {
		return fmt.Errorf("arith: max_operand must be positive, got %d", cfg.MaxOperand)
	}
	u.cfg = cfg
	return nil
}

func (u *arithUnit) Ops() []ext.Op {
	return []ext.Op{
		{
			Name:  "add",
			Arity: 2,
			Doc:   "returns the sum of two integers",
			Handler: func(ctx context.Context, args []ext.Value) (ext.Value, error) {
				nums, err := ext.IntArgs("add", args)
				if err != nil {
					return ext.None(), err
				}
				for _, n := range nums {
					if n > u.cfg.MaxOperand || n < -u.cfg.MaxOperand {
						return ext.None(), fmt.Errorf("arith: operand %d exceeds bound %d", n, u.cfg.MaxOperand)
					}
				}
				return ext.Int(nums[0] + nums[1]), nil
			},
		},
	}
}
