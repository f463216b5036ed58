package generator

import (
	"fmt"

	"github.com/imamik/ltmgen/internal/tmsh"
)

// Reason classifies a non-fatal generation problem.
type Reason string

const (
	// ReasonUnresolvedMember means a pool member names no declared node.
	ReasonUnresolvedMember Reason = "unresolved-member"
	// ReasonUnsupportedType means a monitor or profile type has no command form.
	ReasonUnsupportedType Reason = "unsupported-type"
)

// Diagnostic is a non-fatal problem found while generating.
type Diagnostic struct {
	Reason  Reason    `json:"reason"`
	Kind    tmsh.Kind `json:"kind"`
	Entity  string    `json:"entity"`
	Message string    `json:"message"`
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Kind, d.Entity, d.Message)
}
