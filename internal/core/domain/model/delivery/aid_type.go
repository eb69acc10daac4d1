package delivery

import (
	"fmt"

	"aidtracker/internal/pkg/errs"
)

// AidType classifies what a delivery contains.
type AidType int

const (
	UnknownAidType AidType = iota
	Food
	Clothing
	Medicine
	Diapers
	FormulaMilk
	Mixed
)

func getAidTypeValues() map[AidType]string {
	//nolint:exhaustive // UnknownAidType is never stored
	return map[AidType]string{
		Food:        "alimentos",
		Clothing:    "ropa",
		Medicine:    "medicina",
		Diapers:     "pañales",
		FormulaMilk: "leche_formula",
		Mixed:       "mixta",
	}
}

func AllAidTypes() []AidType {
	return []AidType{Food, Clothing, Medicine, Diapers, FormulaMilk, Mixed}
}

func ParseAidType(s string) (AidType, error) {
	for aid, value := range getAidTypeValues() {
		if value == s {
			return aid, nil
		}
	}
	return UnknownAidType, errs.NewValueIsInvalidErrorWithCause("aid type is invalid", fmt.Errorf("%q is not an aid type", s))
}

func (a AidType) Validate() error {
	if _, ok := getAidTypeValues()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("aid type is invalid", fmt.Errorf("%d is not an aid type", a))
	}
	return nil
}

func (a AidType) Value() string {
	return getAidTypeValues()[a]
}

func (a AidType) String() string {
	if v, ok := getAidTypeValues()[a]; ok {
		return v
	}
	return "unknown"
}
