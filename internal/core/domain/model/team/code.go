package team

import (
	"fmt"

	"aidtracker/internal/pkg/errs"
)

// Code identifies one of the six service teams. The numeric order is the
// rotation order: AJ takes week 0, BF week 1, and so on.
type Code int

const (
	// Unknown is the zero value and is never on duty.
	Unknown Code = iota
	AJ
	BF
	CI
	DG
	EH
	KL
)

// TeamCount is the size of the closed team set.
const TeamCount = 6

func getCodeStrings() map[Code]string {
	//nolint:exhaustive // Unknown has no storage form
	return map[Code]string{
		AJ: "AJ",
		BF: "BF",
		CI: "CI",
		DG: "DG",
		EH: "EH",
		KL: "KL",
	}
}

// AllCodes returns the canonical rotation order.
func AllCodes() []Code {
	return []Code{AJ, BF, CI, DG, EH, KL}
}

// ParseCode maps the two-letter storage form to a Code.
func ParseCode(s string) (Code, error) {
	for code, str := range getCodeStrings() {
		if str == s {
			return code, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("team code is invalid", fmt.Errorf("%q is not a team code", s))
}

func (c Code) Validate() error {
	if _, ok := getCodeStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("team code is invalid", fmt.Errorf("%d is not a team code", c))
	}
	return nil
}

func (c Code) String() string {
	if str, ok := getCodeStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// DisplayName is the label shown to volunteers, e.g. "Equipo AJ".
func (c Code) DisplayName() string {
	return "Equipo " + c.String()
}

// index is the zero-based rotation slot, or -1 for codes outside the set.
func (c Code) index() int {
	if c.Validate() != nil {
		return -1
	}
	return int(c) - 1
}
