package catalog

import (
	"errors"
	"fmt"
)

// #region errors

// ErrUnitNotFound reports an unrecognized unit id. Fatal for the operation
// that needed the unit; callers branch on it with errors.Is.
var ErrUnitNotFound = errors.New("unit not found")

// #endregion errors

// #region catalog

// Catalog is the immutable per-process set of units.
type Catalog struct {
	units []Unit
	byID  map[string]int
}

// New builds a Catalog from a unit list. Later duplicates of an id are ignored.
func New(units []Unit) *Catalog {
	c := &Catalog{units: units, byID: make(map[string]int, len(units))}
	for i, u := range units {
		if _, ok := c.byID[u.ID]; !ok {
			c.byID[u.ID] = i
		}
	}
	return c
}

// GetUnit returns the unit for id, or ErrUnitNotFound.
func (c *Catalog) GetUnit(id string) (Unit, error) {
	i, ok := c.byID[id]
	if !ok {
		return Unit{}, fmt.Errorf("unit %q: %w", id, ErrUnitNotFound)
	}
	return c.units[i], nil
}

// GetQuestions returns the ordered target questions for a unit, or
// ErrUnitNotFound. Purely a read of static configuration.
func (c *Catalog) GetQuestions(id string) ([]Question, error) {
	u, err := c.GetUnit(id)
	if err != nil {
		return nil, err
	}
	return u.Questions, nil
}

// ListUnits returns id, title, and objectives for every unit in order.
func (c *Catalog) ListUnits() []UnitSummary {
	out := make([]UnitSummary, len(c.units))
	for i, u := range c.units {
		out[i] = UnitSummary{ID: u.ID, Title: u.Title, Objectives: u.Objectives}
	}
	return out
}

// Units returns the full unit slice. Callers must not mutate it.
func (c *Catalog) Units() []Unit {
	return c.units
}

// #endregion catalog

// #region openers

// Greetings are the opening lines a session may start with.
var Greetings = []string{
	"你好！(Nǐ hǎo!)",
	"嗨！(Hài!)",
}

// GenericFirstQuestion is asked when a unit carries no first question.
const GenericFirstQuestion = "我们开始吧，你叫什么名字？"

// FirstQuestion returns the unit's warm-up question, falling back to the
// generic opener.
func FirstQuestion(u Unit) string {
	if u.FirstQuestion != "" {
		return u.FirstQuestion
	}
	return GenericFirstQuestion
}

// #endregion openers
