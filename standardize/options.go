// SPDX-License-Identifier: MIT

package standardize

import "fmt"

// Mode selects the statistic used by Standardize.
type Mode int

const (
	// Global uses one mean and one std over the whole matrix.
	Global Mode = iota
	// PerColumn uses a mean and a std per column.
	PerColumn
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case PerColumn:
		return "per-column"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Option configures Standardize.
type Option func(*options)

type options struct {
	mode Mode
}

// WithMode selects the statistic. Panics on an unknown Mode.
func WithMode(m Mode) Option {
	if m != Global && m != PerColumn {
		panic(fmt.Sprintf("standardize: WithMode: unknown mode %d", int(m)))
	}

	return func(o *options) { o.mode = m }
}

// WithPerColumn is shorthand for WithMode(PerColumn).
func WithPerColumn() Option { return WithMode(PerColumn) }

func gatherOptions(opts ...Option) options {
	o := options{mode: Global}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
