package domain

import (
	"errors"
	"fmt"
)

// Onboarding wizard steps. The flow is linear: Personal → Company → Branding
// → Social → Terms → Photo.
const (
	StepPersonal = 1
	StepCompany  = 2
	StepBranding = 3
	StepSocial   = 4
	StepTerms    = 5
	StepPhoto    = 6

	StepCount = 6
)

var ErrStepOutOfRange = errors.New("onboarding step out of range")
var ErrStepValidation = errors.New("onboarding step validation failed")

var stepNames = map[int]string{
	StepPersonal: "personal",
	StepCompany:  "company",
	StepBranding: "branding",
	StepSocial:   "social",
	StepTerms:    "terms",
	StepPhoto:    "photo",
}

// StepName returns the short name of an onboarding step, or "" when the step
// is out of range.
func StepName(step int) string {
	return stepNames[step]
}

// ValidateStepData checks the required fields of a single onboarding step.
// Steps 3, 4 and 6 have no required fields and always validate; the whole
// wizard is optional except where a field is explicitly required.
// The returned error wraps ErrStepValidation and carries the user-facing
// message shown by the wizard.
func ValidateStepData(step int, data map[string]string) error {
	if step < StepPersonal || step > StepPhoto {
		return ErrStepOutOfRange
	}

	switch step {
	case StepPersonal:
		if data["first_name"] == "" || data["last_name"] == "" {
			return stepError("Please enter your first and last name")
		}
	case StepCompany:
		if data["company"] == "" {
			return stepError("Please enter your company name")
		}
	case StepTerms:
		if data["terms_accepted"] != "true" || data["privacy_accepted"] != "true" {
			return stepError("Please accept the terms and privacy policy")
		}
	}
	return nil
}

func stepError(msg string) error {
	return fmt.Errorf("%w: %s", ErrStepValidation, msg)
}
