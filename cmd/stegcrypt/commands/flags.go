package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// intRange is an int flag limited to [min, max], optionally also accepting 0.
type intRange struct {
	p         *int
	min, max  int
	allowZero bool
}

func newIntRange(p *int, def, min, max int, allowZero bool) *intRange {
	*p = def
	return &intRange{p: p, min: min, max: max, allowZero: allowZero}
}

var _ pflag.Value = (*intRange)(nil)

func (r *intRange) String() string { return strconv.Itoa(*r.p) }

func (r *intRange) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not an integer", s)
	}
	if n == 0 && r.allowZero {
		*r.p = 0
		return nil
	}
	if n < r.min || n > r.max {
		if r.allowZero {
			return fmt.Errorf("must be 0 (auto) or %d-%d", r.min, r.max)
		}
		return fmt.Errorf("must be %d-%d", r.min, r.max)
	}
	*r.p = n
	return nil
}

func (r *intRange) Type() string { return "int" }
