package persona

import (
	"fmt"

	"aidtracker/internal/pkg/errs"
)

// MaritalStatus of a beneficiary.
type MaritalStatus int

const (
	UnknownMaritalStatus MaritalStatus = iota
	Single
	Married
	CommonLaw
	Widowed
	Divorced
)

// getMaritalStatusValues returns the storage form of each status.
func getMaritalStatusValues() map[MaritalStatus]string {
	//nolint:exhaustive // UnknownMaritalStatus is never stored
	return map[MaritalStatus]string{
		Single:    "soltero",
		Married:   "casado",
		CommonLaw: "union_libre",
		Widowed:   "viudo",
		Divorced:  "divorciado",
	}
}

func getMaritalStatusLabels() map[MaritalStatus]string {
	//nolint:exhaustive // UnknownMaritalStatus has no label
	return map[MaritalStatus]string{
		Single:    "Soltero/a",
		Married:   "Casado/a",
		CommonLaw: "Unión Libre",
		Widowed:   "Viudo/a",
		Divorced:  "Divorciado/a",
	}
}

func ParseMaritalStatus(s string) (MaritalStatus, error) {
	for status, value := range getMaritalStatusValues() {
		if value == s {
			return status, nil
		}
	}
	return UnknownMaritalStatus, errs.NewValueIsInvalidErrorWithCause(
		"marital status is invalid", fmt.Errorf("%q is not a marital status", s))
}

func (s MaritalStatus) Validate() error {
	if _, ok := getMaritalStatusValues()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"marital status is invalid", fmt.Errorf("%d is not a marital status", s))
	}
	return nil
}

// Value is the storage and wire form, e.g. "union_libre".
func (s MaritalStatus) Value() string {
	return getMaritalStatusValues()[s]
}

func (s MaritalStatus) String() string {
	if label, ok := getMaritalStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}
