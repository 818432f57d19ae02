// Package validation wraps go-playground/validator with the custom rules
// this API needs on top of the built-in tags (required, email, oneof,
// gte/lte, max, datetime, http_url):
//
//	course_code      — 3–5 uppercase letters + 4 digits + optional
//	                   letter suffix (e.g. COMS4111, COMS4111W)
//	department_code  — 3–5 uppercase letters (e.g. COMS, MATH)
//	uni              — institutional identifier: 2–3 lowercase letters
//	                   followed by 1–4 digits (e.g. abc1234)
//	credits          — at most one decimal place (3.5 ok, 3.55 not)
//
// Custom rules must be registered exactly once, so the package holds a
// single shared *validator.Validate rather than constructing one per
// request. Validation is total: the validator collects EVERY failing
// field before returning, so the caller sees all problems at once.
package validation

import (
	"log"
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	courseCodeRe     = regexp.MustCompile(`^[A-Z]{3,5}[0-9]{4}[A-Z]?$`)
	departmentCodeRe = regexp.MustCompile(`^[A-Z]{3,5}$`)
	uniRe            = regexp.MustCompile(`^[a-z]{2,3}[0-9]{1,4}$`)
)

var validate = mustBuild()

func mustBuild() *validator.Validate {
	v := validator.New()

	rules := map[string]validator.Func{
		"course_code":     isCourseCode,
		"department_code": isDepartmentCode,
		"uni":             isUNI,
		"credits":         hasOneDecimalPlace,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Only fails for an empty tag name — a programming error,
			// so crash at init rather than limp along without the rule.
			log.Fatalf("cannot register validation %q: %s", tag, err.Error())
		}
	}

	return v
}

// Struct validates every validate:"..." tag on s. It returns nil when all
// rules pass, or a validator.ValidationErrors listing each violated field.
func Struct(s any) error {
	return validate.Struct(s)
}

func isCourseCode(fl validator.FieldLevel) bool {
	return courseCodeRe.MatchString(fl.Field().String())
}

func isDepartmentCode(fl validator.FieldLevel) bool {
	return departmentCodeRe.MatchString(fl.Field().String())
}

func isUNI(fl validator.FieldLevel) bool {
	return uniRe.MatchString(fl.Field().String())
}

// hasOneDecimalPlace accepts numbers expressible with a single decimal
// digit, e.g. 3.0, 3.5, 0.1. The epsilon absorbs float64 representation
// error (0.1*10 is not exactly 1 in binary floating point).
func hasOneDecimalPlace(fl validator.FieldLevel) bool {
	scaled := fl.Field().Float() * 10
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}
