package persona

import (
	"fmt"

	"aidtracker/internal/pkg/errs"
)

// FamilyType groups households by size.
type FamilyType int

const (
	UnknownFamilyType FamilyType = iota
	SmallFamily
	MediumFamily
	LargeFamily
)

func getFamilyTypeValues() map[FamilyType]string {
	//nolint:exhaustive // UnknownFamilyType is never stored
	return map[FamilyType]string{
		SmallFamily:  "pequeña",
		MediumFamily: "mediana",
		LargeFamily:  "grande",
	}
}

func getFamilyTypeLabels() map[FamilyType]string {
	//nolint:exhaustive // UnknownFamilyType has no label
	return map[FamilyType]string{
		SmallFamily:  "Pequeña (1-3 miembros)",
		MediumFamily: "Mediana (4-6 miembros)",
		LargeFamily:  "Grande (7+ miembros)",
	}
}

func ParseFamilyType(s string) (FamilyType, error) {
	for ft, value := range getFamilyTypeValues() {
		if value == s {
			return ft, nil
		}
	}
	return UnknownFamilyType, errs.NewValueIsInvalidErrorWithCause(
		"family type is invalid", fmt.Errorf("%q is not a family type", s))
}

func (f FamilyType) Validate() error {
	if _, ok := getFamilyTypeValues()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"family type is invalid", fmt.Errorf("%d is not a family type", f))
	}
	return nil
}

func (f FamilyType) Value() string {
	return getFamilyTypeValues()[f]
}

func (f FamilyType) String() string {
	if label, ok := getFamilyTypeLabels()[f]; ok {
		return label
	}
	return "Unknown"
}
