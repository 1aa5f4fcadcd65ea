// Package puzzle defines the shape of a daily puzzle and the registry the
// CLI resolves days from.
package puzzle

import (
	"cmp"
	"slices"

	"github.com/matzehuels/advent/pkg/errors"
)

// Solver computes one answer from the whole puzzle input.
type Solver func(input string) (int, error)

// Day is one puzzle: a number, a title and one solver per part.
type Day struct {
	Number int
	Title  string
	Parts  []Solver
}

// Part returns the solver for part n (1-based).
func (d Day) Part(n int) (Solver, error) {
	if n < 1 || n > len(d.Parts) {
		return nil, errors.New(errors.ErrCodeInvalidPart, "day %d has no part %d", d.Number, n)
	}
	return d.Parts[n-1], nil
}

// Registry holds puzzle days ordered by number.
type Registry struct {
	days []Day
}

// NewRegistry creates a registry from days. Duplicate day numbers and
// numbers outside the calendar are rejected.
func NewRegistry(days ...Day) (*Registry, error) {
	r := &Registry{}
	for _, d := range days {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a day, keeping the registry sorted.
func (r *Registry) Register(d Day) error {
	if err := errors.ValidateDay(d.Number); err != nil {
		return err
	}
	i, found := slices.BinarySearchFunc(r.days, d.Number, func(e Day, n int) int {
		return cmp.Compare(e.Number, n)
	})
	if found {
		return errors.New(errors.ErrCodeInvalidDay, "day %d registered twice", d.Number)
	}
	r.days = slices.Insert(r.days, i, d)
	return nil
}

// Lookup returns the day with the given number.
func (r *Registry) Lookup(number int) (Day, error) {
	if err := errors.ValidateDay(number); err != nil {
		return Day{}, err
	}
	i, found := slices.BinarySearchFunc(r.days, number, func(e Day, n int) int {
		return cmp.Compare(e.Number, n)
	})
	if !found {
		return Day{}, errors.New(errors.ErrCodeUnknownDay, "day %d has no solver", number)
	}
	return r.days[i], nil
}

// Days returns all registered days in ascending order.
func (r *Registry) Days() []Day {
	return slices.Clone(r.days)
}

// Latest returns the highest numbered day.
func (r *Registry) Latest() (Day, bool) {
	if len(r.days) == 0 {
		return Day{}, false
	}
	return r.days[len(r.days)-1], true
}
