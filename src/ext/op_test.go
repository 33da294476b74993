package ext

import (
	"context"
	"errors"
	"testing"
)

func echoOp() Op {
	return Op{
		Name:  "echo",
		Arity: 1,
		Handler: func(ctx context.Context, args []Value) (Value, error) {
			return args[0], nil
		},
	}
}

func TestOpCallEnforcesArity(t *testing.T) {
	op := echoOp()

	cases := []struct {
		name string
		args []Value
		ok   bool
	}{
		{"exact", []Value{Text("x")}, true},
		{"none", nil, false},
		{"extra", []Value{Text("x"), Text("y")}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := op.Call(context.Background(), tc.args)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrArity) {
				t.Fatalf("want ErrArity, got %v", err)
			}
		})
	}
}

func TestIntArgs(t *testing.T) {
	nums, err := IntArgs("add", []Value{Int(2), Int(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nums[0] != 2 || nums[1] != 3 {
		t.Fatalf("got %v", nums)
	}

	if _, err := IntArgs("add", []Value{Int(2), Text("three")}); err == nil {
		t.Fatal("want error for non-int argument")
	}
}

func TestParseValue(t *testing.T) {
	if v := ParseValue("42"); v.Kind() != KindInt {
		t.Fatalf("42 parsed as %s", v.Kind())
	}
	if v := ParseValue("bar"); v.Kind() != KindText {
		t.Fatalf("bar parsed as %s", v.Kind())
	}
	if v := ParseValue("-7"); v.String() != "-7" {
		t.Fatalf("round-trip got %s", v.String())
	}
}

func TestValueAccessors(t *testing.T) {
	if s, ok := Text("bar").Text(); !ok || s != "bar" {
		t.Fatalf("Text accessor: %q %v", s, ok)
	}
	if _, ok := Text("bar").Int(); ok {
		t.Fatal("text value should not unpack as int")
	}
	if None().Kind() != KindNone {
		t.Fatal("zero value should be none")
	}
	if None().String() != "none" {
		t.Fatalf("none renders as %q", None().String())
	}
}
