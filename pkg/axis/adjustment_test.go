package axis

import "testing"

func TestScrollAdjustmentClamps(t *testing.T) {
	a := NewScrollAdjustment(50, 100, 80)
	if a.Value() != 20 {
		t.Errorf("Value() = %g, want 20", a.Value())
	}
	a.SetValue(-5)
	if a.Value() != 0 {
		t.Errorf("Value() = %g, want 0", a.Value())
	}
	a.SetUpper(500)
	a.SetValue(1000)
	if a.Value() != 420 {
		t.Errorf("Value() = %g, want 420", a.Value())
	}
	a.SetPageSize(600)
	if a.Value() != 0 || a.MaxValue() != 0 {
		t.Errorf("Value() = %g, MaxValue() = %g, want 0", a.Value(), a.MaxValue())
	}
}

func TestScrollAdjustmentListeners(t *testing.T) {
	a := NewScrollAdjustment(0, 1000, 100)
	calls := 0
	remove := a.AddListener(func() { calls++ })

	a.SetValue(10)
	a.SetValue(10)
	a.SetUpper(2000)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	a.SetUpper(50)
	if calls != 2 {
		t.Errorf("clamping by SetUpper should notify, calls = %d", calls)
	}

	remove()
	a.SetUpper(1000)
	a.SetValue(300)
	if calls != 2 {
		t.Errorf("removed listener was called, calls = %d", calls)
	}
	if a.AddListener(nil) == nil {
		t.Error("AddListener(nil) should return a no-op remover")
	}
}

func TestTunablesValidate(t *testing.T) {
	if err := DefaultTunables().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	bad := []func(*Tunables){
		func(t *Tunables) { t.DefaultItemSize = 0 },
		func(t *Tunables) { t.Overshoot = 1.5 },
		func(t *Tunables) { t.Overshoot = 0 },
		func(t *Tunables) { t.OutOfSightMargin = -1 },
		func(t *Tunables) { t.PoolLimit = -1 },
		func(t *Tunables) { t.PoolLimit = 0 },
		func(t *Tunables) { t.MaxSeekSteps = 0 },
		func(t *Tunables) { t.ResizeThreshold = -1 },
		func(t *Tunables) { t.ResizeThreshold = 0 },
	}
	for i, mutate := range bad {
		tu := DefaultTunables()
		mutate(&tu)
		if tu.Validate() == nil {
			t.Errorf("case %d: expected an error", i)
		}
	}
}

func TestTunablesWithDefaults(t *testing.T) {
	got := Tunables{OutOfSightMargin: 40, PoolLimit: 8}.withDefaults()
	want := DefaultTunables()
	want.OutOfSightMargin = 40
	want.PoolLimit = 8
	if got != want {
		t.Errorf("withDefaults() = %+v, want %+v", got, want)
	}
}

func TestWithDefaultsOnlyReplacesInvalid(t *testing.T) {
	fields := []func(*Tunables){
		func(t *Tunables) { t.DefaultItemSize = 0 },
		func(t *Tunables) { t.Overshoot = 0 },
		func(t *Tunables) { t.PoolLimit = 0 },
		func(t *Tunables) { t.MaxSeekSteps = 0 },
		func(t *Tunables) { t.ResizeThreshold = 0 },
	}
	for i, zero := range fields {
		tu := DefaultTunables()
		zero(&tu)
		if tu.Validate() == nil {
			t.Errorf("case %d: zero value accepted by Validate but replaced by withDefaults", i)
		}
		if got := tu.withDefaults(); got != DefaultTunables() {
			t.Errorf("case %d: withDefaults() = %+v", i, got)
		}
	}
}
