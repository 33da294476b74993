package ext_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/sofmeright/extkit/src/ext"
	_ "github.com/sofmeright/extkit/src/ext/units"
)

func TestLoadAndCallPlat(t *testing.T) {
	host := ext.NewHost(ext.HostOptions{})

	unit, err := host.Load(context.Background(), "plat")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if unit.Name() != "plat" {
		t.Fatalf("registered name = %q, want plat", unit.Name())
	}
	if unit.Kind() != ext.KindPlatform {
		t.Fatalf("kind = %s, want platform", unit.Kind())
	}

	got, err := host.Call(context.Background(), "plat", "foo")
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if s, ok := got.Text(); !ok || s != "bar" {
		t.Fatalf("foo() = %v, want text bar", got)
	}
}

func TestCallWithExtraArgumentRejected(t *testing.T) {
	host := ext.NewHost(ext.HostOptions{})
	if _, err := host.Load(context.Background(), "plat"); err != nil {
		t.Fatalf("load: %v", err)
	}

	_, err := host.Call(context.Background(), "plat", "foo", ext.Text("extra"))
	if !errors.Is(err, ext.ErrArity) {
		t.Fatalf("want ErrArity, got %v", err)
	}
}

func TestRepeatedCallsNoDrift(t *testing.T) {
	host := ext.NewHost(ext.HostOptions{})
	if _, err := host.Load(context.Background(), "plat"); err != nil {
		t.Fatalf("load: %v", err)
	}

	for i := 0; i < 1000; i++ {
		got, err := host.Call(context.Background(), "plat", "foo")
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if got.String() != "bar" {
			t.Fatalf("call %d = %q, want bar", i, got)
		}
	}
}

func TestConcurrentCalls(t *testing.T) {
	host := ext.NewHost(ext.HostOptions{MaxConcurrentCalls: 4})
	if _, err := host.Load(context.Background(), "plat"); err != nil {
		t.Fatalf("load: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := host.Call(context.Background(), "plat", "foo")
			if err != nil {
				errs <- err
				return
			}
			if got.String() != "bar" {
				errs <- fmt.Errorf("got %q", got)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestDoubleLoadIsIdempotent(t *testing.T) {
	host := ext.NewHost(ext.HostOptions{})

	first, err := host.Load(context.Background(), "plat")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := host.Load(context.Background(), "plat")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if first != second {
		t.Fatal("second load returned a different instance")
	}

	got, err := host.Call(context.Background(), "plat", "foo")
	if err != nil || got.String() != "bar" {
		t.Fatalf("after double load: %v, %v", got, err)
	}
}

func TestRegisteredNames(t *testing.T) {
	names := ext.All()
	want := map[string]bool{"plat": true, "pure": true, "extmod": true}
	seen := make(map[string]bool)
	for _, n := range names {
		seen[n] = true
	}
	for n := range want {
		if !seen[n] {
			t.Fatalf("unit %s not registered (have %v)", n, names)
		}
	}
}

// failingUnit fails initialization; registered once for the whole test
// binary under a name no builtin uses.
type failingUnit struct{}

func (u *failingUnit) Name() string       { return "failing" }
func (u *failingUnit) Kind() ext.UnitKind { return ext.KindPlatform }
func (u *failingUnit) Ops() []ext.Op      { return nil }

func (u *failingUnit) Init(ctx context.Context) error {
	return errors.New("no memory for module object")
}

func init() {
	ext.Register("failing", func() ext.Unit { return &failingUnit{} })
}

func TestInitFailurePropagates(t *testing.T) {
	host := ext.NewHost(ext.HostOptions{})

	_, err := host.Load(context.Background(), "failing")
	if err == nil {
		t.Fatal("want init failure")
	}
	var initErr *ext.InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("want InitError, got %T: %v", err, err)
	}
	if initErr.Unit != "failing" {
		t.Fatalf("InitError.Unit = %q", initErr.Unit)
	}
	if host.Loaded("failing") {
		t.Fatal("failed unit must not be loaded")
	}
}

func TestUnknownUnitAndOp(t *testing.T) {
	host := ext.NewHost(ext.HostOptions{})

	if _, err := host.Load(context.Background(), "nope"); !errors.Is(err, ext.ErrUnknownUnit) {
		t.Fatalf("want ErrUnknownUnit, got %v", err)
	}
	if _, err := host.Call(context.Background(), "plat", "foo"); !errors.Is(err, ext.ErrNotLoaded) {
		t.Fatalf("want ErrNotLoaded, got %v", err)
	}

	if _, err := host.Load(context.Background(), "plat"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := host.Call(context.Background(), "plat", "baz"); !errors.Is(err, ext.ErrUnknownOp) {
		t.Fatalf("want ErrUnknownOp, got %v", err)
	}
}

func TestLoadAll(t *testing.T) {
	host := ext.NewHost(ext.HostOptions{})

	if err := host.LoadAll(context.Background(), []string{"plat", "pure", "extmod"}); err != nil {
		t.Fatalf("load all: %v", err)
	}
	for _, name := range []string{"extmod", "plat", "pure"} {
		if !host.Loaded(name) {
			t.Fatalf("%s not loaded", name)
		}
	}

	if err := host.LoadAll(context.Background(), []string{"plat", "nope"}); err == nil {
		t.Fatal("want error for unknown unit in batch")
	}
	if !host.Loaded("plat") {
		t.Fatal("previously loaded unit must stay loaded after a failed batch")
	}
}

func TestUnitOptionsApplied(t *testing.T) {
	host := ext.NewHost(ext.HostOptions{
		UnitOptions: map[string]map[string]any{
			"arith": {"max_operand": 10},
		},
	})
	if _, err := host.Load(context.Background(), "arith"); err != nil {
		t.Fatalf("load: %v", err)
	}

	got, err := host.Call(context.Background(), "arith", "add", ext.Int(4), ext.Int(5))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if n, _ := got.Int(); n != 9 {
		t.Fatalf("add(4,5) = %v", got)
	}

	if _, err := host.Call(context.Background(), "arith", "add", ext.Int(11), ext.Int(1)); err == nil {
		t.Fatal("want operand bound error")
	}
}
