package combat

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/go-collections/pkg/datastructs/growable"
)

// Interface compliance check
var _ Attackable = (*Unit)(nil)

func newObservedRoster(t *testing.T) (*Roster, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewRoster(growable.DefaultCapacity, zap.New(core)), logs
}

func mustEnlist(t *testing.T, r *Roster, a Attackable) {
	t.Helper()
	if err := r.Enlist(a); err != nil {
		t.Fatalf("Enlist() error = %v", err)
	}
}

func hps(r *Roster) []int {
	out := make([]int, 0, r.Len())
	for _, a := range r.Units() {
		out = append(out, a.HP())
	}
	return out
}

// =============================================================================
// Unit
// =============================================================================

func TestUnit_TakeDamage(t *testing.T) {
	tests := []struct {
		name   string
		hp     int
		damage int
		want   int
	}{
		{"partial", 100, 30, 70},
		{"exact", 50, 50, 0},
		{"overkill", 10, 999, 0},
		{"negative_damage", 10, -5, 10},
		{"zero_damage", 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUnit("u", tt.hp)
			u.TakeDamage(tt.damage)
			if u.HP() != tt.want {
				t.Errorf("HP() = %d, want %d", u.HP(), tt.want)
			}
			if u.Alive() != (tt.want > 0) {
				t.Errorf("Alive() = %v, want %v", u.Alive(), tt.want > 0)
			}
		})
	}
}

func TestNewUnit(t *testing.T) {
	a, b := NewUnit("a", -3), NewUnit("b", 5)
	if a.HP() != 0 {
		t.Errorf("HP() = %d, want 0", a.HP())
	}
	if a.ID == b.ID {
		t.Error("units share the same ID")
	}
}

// =============================================================================
// Roster: Enlist(), Deploy(), Retreat()
// =============================================================================

func TestRoster_EnlistDeploy(t *testing.T) {
	r, logs := newObservedRoster(t)
	mustEnlist(t, r, NewUnit("a", 10))
	mustEnlist(t, r, NewUnit("c", 30))
	if err := r.Deploy(1, NewUnit("b", 20)); err != nil {
		t.Fatalf("Deploy(1) error = %v", err)
	}

	if diff := cmp.Diff([]int{10, 20, 30}, hps(r)); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
	if got := logs.FilterMessage("unit deployed").Len(); got != 1 {
		t.Errorf("deployed log entries = %d, want 1", got)
	}
}

func TestRoster_DeployOutOfRange(t *testing.T) {
	r, _ := newObservedRoster(t)
	err := r.Deploy(1, NewUnit("a", 1))
	if !errors.Is(err, growable.ErrIndexOutOfRange) {
		t.Errorf("Deploy(1) error = %v, want ErrIndexOutOfRange", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRoster_Retreat(t *testing.T) {
	r, _ := newObservedRoster(t)
	last := NewUnit("last", 5)
	mustEnlist(t, r, NewUnit("first", 1))
	mustEnlist(t, r, last)

	got, err := r.Retreat()
	if err != nil {
		t.Fatalf("Retreat() error = %v", err)
	}
	if got != last {
		t.Errorf("Retreat() = %v, want %v", got, last)
	}

	_, _ = r.Retreat()
	if _, err := r.Retreat(); !errors.Is(err, growable.ErrEmptyContainer) {
		t.Errorf("Retreat() error = %v, want ErrEmptyContainer", err)
	}
}

func TestRoster_RejectsNilUnit(t *testing.T) {
	r, _ := newObservedRoster(t)
	mustEnlist(t, r, NewUnit("a", 1))

	tests := []struct {
		name string
		fn   func() error
	}{
		{"enlist", func() error { return r.Enlist(nil) }},
		{"deploy", func() error { return r.Deploy(0, nil) }},
		{"replace", func() error { return r.Replace(0, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrNilUnit) {
				t.Errorf("error = %v, want ErrNilUnit", err)
			}
			if r.Len() != 1 {
				t.Errorf("Len() = %d, want 1", r.Len())
			}
			if r.TotalHP() != 1 {
				t.Errorf("TotalHP() = %d, want 1", r.TotalHP())
			}
		})
	}
}

// =============================================================================
// Roster: At(), Replace()
// =============================================================================

func TestRoster_AtReplace(t *testing.T) {
	r, _ := newObservedRoster(t)
	mustEnlist(t, r, NewUnit("a", 1))
	fresh := NewUnit("b", 2)

	if err := r.Replace(0, fresh); err != nil {
		t.Fatalf("Replace(0) error = %v", err)
	}
	got, err := r.At(0)
	if err != nil {
		t.Fatalf("At(0) error = %v", err)
	}
	if got != fresh {
		t.Errorf("At(0) = %v, want %v", got, fresh)
	}

	if _, err := r.At(1); !errors.Is(err, growable.ErrIndexOutOfRange) {
		t.Errorf("At(1) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := r.Replace(-1, fresh); !errors.Is(err, growable.ErrIndexOutOfRange) {
		t.Errorf("Replace(-1) error = %v, want ErrIndexOutOfRange", err)
	}
}

// =============================================================================
// Roster: Strike(), Volley(), TotalHP()
// =============================================================================

func TestRoster_Strike(t *testing.T) {
	tests := []struct {
		name       string
		position   int
		damage     int
		wantFallen bool
		want       []int
	}{
		{"wound", 1, 5, false, []int{10, 15, 30}},
		{"fall_middle", 1, 20, true, []int{10, 30}},
		{"fall_head", 0, 10, true, []int{20, 30}},
		{"fall_tail", 2, 100, true, []int{10, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, logs := newObservedRoster(t)
			for _, hp := range []int{10, 20, 30} {
				mustEnlist(t, r, NewUnit("u", hp))
			}

			fallen, err := r.Strike(tt.position, tt.damage)
			if err != nil {
				t.Fatalf("Strike() error = %v", err)
			}
			if fallen != tt.wantFallen {
				t.Errorf("Strike() fallen = %v, want %v", fallen, tt.wantFallen)
			}
			if diff := cmp.Diff(tt.want, hps(r)); diff != "" {
				t.Errorf("roster mismatch (-want +got):\n%s", diff)
			}
			wantLogs := 0
			if tt.wantFallen {
				wantLogs = 1
			}
			if got := logs.FilterMessage("unit fallen").Len(); got != wantLogs {
				t.Errorf("fallen log entries = %d, want %d", got, wantLogs)
			}
		})
	}
}

func TestRoster_StrikeOutOfRange(t *testing.T) {
	r, _ := newObservedRoster(t)
	mustEnlist(t, r, NewUnit("a", 1))

	_, err := r.Strike(3, 1)
	var rangeErr *growable.IndexOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Strike(3) error = %v, want *IndexOutOfRangeError", err)
	}
	if rangeErr.Index != 3 || rangeErr.Size != 1 {
		t.Errorf("error = {%d %d}, want {3 1}", rangeErr.Index, rangeErr.Size)
	}
}

func TestRoster_Volley(t *testing.T) {
	r, logs := newObservedRoster(t)
	for _, hp := range []int{5, 40, 10, 25, 1} {
		mustEnlist(t, r, NewUnit("u", hp))
	}

	if fallen := r.Volley(10); fallen != 3 {
		t.Errorf("Volley(10) = %d, want 3", fallen)
	}
	if diff := cmp.Diff([]int{30, 15}, hps(r)); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
	if r.TotalHP() != 45 {
		t.Errorf("TotalHP() = %d, want 45", r.TotalHP())
	}
	if got := logs.FilterMessage("volley").Len(); got != 1 {
		t.Errorf("volley log entries = %d, want 1", got)
	}
}

func TestRoster_VolleyGrowsPastDefault(t *testing.T) {
	r := NewRoster(0, nil)
	for i := 0; i < 100; i++ {
		mustEnlist(t, r, NewUnit("u", i%4))
	}
	// hp%4 == 0 units start dead and fall on the first volley.
	if fallen := r.Volley(1); fallen != 50 {
		t.Errorf("Volley(1) = %d, want 50", fallen)
	}
	if r.Len() != 50 {
		t.Errorf("Len() = %d, want 50", r.Len())
	}
}
