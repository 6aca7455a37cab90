package combat

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-collections/pkg/datastructs/growable"
)

// ErrNilUnit is returned when a nil Attackable is added to a Roster.
var ErrNilUnit = errors.New("combat: nil unit")

// Roster is an ordered line of Attackables backed by a growable.Buffer.
// A unit leaves the roster as soon as its HP reaches zero.
// It is NOT thread-safe.
type Roster struct {
	units *growable.Buffer[Attackable]
	log   *zap.Logger
}

// NewRoster creates an empty Roster with room for capacity units.
func NewRoster(capacity int, log *zap.Logger) *Roster {
	if log == nil {
		log = zap.NewNop()
	}
	return &Roster{
		units: growable.NewWithCapacity[Attackable](capacity),
		log:   log,
	}
}

// Len returns the number of units in the roster.
func (r *Roster) Len() int {
	return r.units.Size()
}

// Enlist adds a unit at the back of the line. A nil unit is rejected with ErrNilUnit.
func (r *Roster) Enlist(a Attackable) error {
	if a == nil {
		return errors.WithStack(ErrNilUnit)
	}
	r.units.Append(a)
	r.log.Debug("unit enlisted", zap.Int("position", r.units.Size()-1), zap.Int("hp", a.HP()))
	return nil
}

// Deploy places a unit at position, pushing the units behind it back.
func (r *Roster) Deploy(position int, a Attackable) error {
	if a == nil {
		return errors.WithStack(ErrNilUnit)
	}
	if err := r.units.InsertAt(position, a); err != nil {
		return errors.Wrapf(err, "deploy at %d", position)
	}
	r.log.Debug("unit deployed", zap.Int("position", position), zap.Int("hp", a.HP()))
	return nil
}

// Retreat removes and returns the unit at the back of the line.
func (r *Roster) Retreat() (Attackable, error) {
	a, err := r.units.RemoveLast()
	if err != nil {
		return nil, errors.Wrap(err, "retreat")
	}
	return a, nil
}

// At returns the unit at position.
func (r *Roster) At(position int) (Attackable, error) {
	a, err := r.units.Get(position)
	if err != nil {
		return nil, errors.Wrapf(err, "unit at %d", position)
	}
	return a, nil
}

// Replace swaps the unit at position for a.
func (r *Roster) Replace(position int, a Attackable) error {
	if a == nil {
		return errors.WithStack(ErrNilUnit)
	}
	if err := r.units.Set(position, a); err != nil {
		return errors.Wrapf(err, "replace at %d", position)
	}
	return nil
}

// Strike deals damage to the unit at position and removes it if it falls.
func (r *Roster) Strike(position, damage int) (bool, error) {
	a, err := r.units.Get(position)
	if err != nil {
		return false, errors.Wrapf(err, "strike at %d", position)
	}

	a.TakeDamage(damage)
	if a.HP() > 0 {
		return false, nil
	}

	if _, err := r.units.RemoveAt(position); err != nil {
		return false, errors.Wrapf(err, "remove fallen at %d", position)
	}
	r.log.Info("unit fallen", zap.Int("position", position), zap.Int("remaining", r.units.Size()))
	return true, nil
}

// Volley deals damage to every unit and removes the fallen ones.
// It returns the number of units that fell.
func (r *Roster) Volley(damage int) int {
	fallen := 0
	for i, a := range r.units.Backward() {
		a.TakeDamage(damage)
		if a.HP() > 0 {
			continue
		}
		// i comes from Backward, so it is always in range.
		_, _ = r.units.RemoveAt(i)
		fallen++
	}
	if fallen > 0 {
		r.log.Info("volley", zap.Int("damage", damage), zap.Int("fallen", fallen), zap.Int("remaining", r.units.Size()))
	}
	return fallen
}

// TotalHP returns the sum of hit points in the roster.
func (r *Roster) TotalHP() int {
	total := 0
	for _, a := range r.units.All() {
		total += a.HP()
	}
	return total
}

// Units returns a copy of the roster in line order.
func (r *Roster) Units() []Attackable {
	return r.units.Values()
}
