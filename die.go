package diceroll

// MaxDiceAmount and MaxDiceSides bound a single dice term so that
// pathological input (`5001d6`, `1d999999999`) can't exhaust memory.
// Enforced at roll construction time; see Evaluator.evalDiceTerm.
const (
	MaxDiceAmount uint64 = 5000
	MaxDiceSides  uint64 = 5000
)

// Critic classifies a rolled die value relative to its number of sides.
type Critic int

const (
	CriticNot Critic = iota
	CriticMax
	CriticMin
)

func (c Critic) String() string {
	switch c {
	case CriticMax:
		return "max"
	case CriticMin:
		return "min"
	default:
		return "not"
	}
}

// DieResult is a single rolled die: its value, the number of sides it was
// rolled against, and its critic classification. DieResults are ordered and
// compared by Value alone.
type DieResult struct {
	Value  uint64
	Sides  uint64
	Critic Critic
}

// NewDieResult classifies value against sides and returns the DieResult.
func NewDieResult(value, sides uint64) DieResult {
	critic := CriticNot
	switch {
	case value == sides:
		critic = CriticMax
	case value == 1:
		critic = CriticMin
	}
	return DieResult{Value: value, Sides: sides, Critic: critic}
}

// DieResults is a sortable slice of DieResult, ordered ascending by Value.
type DieResults []DieResult

func (d DieResults) Len() int           { return len(d) }
func (d DieResults) Less(i, j int) bool { return d[i].Value < d[j].Value }
func (d DieResults) Swap(i, j int)      { d[i], d[j] = d[j], d[i] }

// Values extracts the Value of each DieResult, preserving order.
func (d DieResults) Values() []uint64 {
	values := make([]uint64, len(d))
	for i, r := range d {
		values[i] = r.Value
	}
	return values
}
