package combat

import (
	"github.com/google/uuid"
)

// Attackable is anything that has hit points and can take damage.
type Attackable interface {
	HP() int
	TakeDamage(damage int)
}

// Unit is a named Attackable with a fixed identity.
type Unit struct {
	ID   uuid.UUID
	Name string
	hp   int
}

// NewUnit creates a Unit with the given hit points. Negative hp is treated as 0.
func NewUnit(name string, hp int) *Unit {
	return &Unit{
		ID:   uuid.New(),
		Name: name,
		hp:   max(hp, 0),
	}
}

// HP returns the remaining hit points.
func (u *Unit) HP() int {
	return u.hp
}

// TakeDamage lowers hit points, never below zero. Negative damage is ignored.
func (u *Unit) TakeDamage(damage int) {
	if damage <= 0 {
		return
	}
	u.hp = max(u.hp-damage, 0)
}

// Alive reports whether the unit has hit points left.
func (u *Unit) Alive() bool {
	return u.hp > 0
}
