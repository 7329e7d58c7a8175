package diceroll

// Multi is the result of a repeated expression (`^`, `^+`, `^#`): one
// Single per repetition, plus an optional collapsed Total for the `^+`
// (sum) form. `^#` (sort) leaves Total nil and instead orders Rolls
// ascending by their individual totals.
type Multi struct {
	Rolls []*Single
	Total *float64
}

// Sum collapses a Multi into its `^+` form: the sum of every repetition's
// total, with Total set.
func (m *Multi) Sum() float64 {
	total := 0.0
	for _, r := range m.Rolls {
		total += r.Total
	}
	m.Total = &total
	return total
}

// SortAscending orders Rolls by total, smallest first, implementing the
// `^#` form. Total is left nil: a sorted Multi still reports each
// repetition individually.
func (m *Multi) SortAscending() {
	rolls := m.Rolls
	for i := 1; i < len(rolls); i++ {
		for j := i; j > 0 && rolls[j-1].Total > rolls[j].Total; j-- {
			rolls[j-1], rolls[j] = rolls[j], rolls[j-1]
		}
	}
}
