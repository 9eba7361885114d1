package verify

import "golang.org/x/exp/rand"

// Property is one named check as the campaign driver sees it: Run draws
// its own operands from the supplied source and reports nil, ErrDiscard
// or a *Violation.
type Property struct {
	Name string
	Run  func(rng *rand.Rand) error
}
