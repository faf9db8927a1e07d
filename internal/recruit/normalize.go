package recruit

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// NormalizeText trims, collapses inner whitespace and lowercases. All
// identifiers and enum-ish values are stored in this canonical form.
func NormalizeText(s string) string {
	return strings.ToLower(CollapseSpaces(s))
}

// CollapseSpaces trims and collapses inner whitespace, preserving case.
// Used for display fields like names, titles and locations.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeSkills canonicalizes every skill and deduplicates while keeping
// first-occurrence order. Blank entries are dropped.
func NormalizeSkills(skills []string) []string {
	clean := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		t := NormalizeText(s)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		clean = append(clean, t)
	}
	return clean
}

func ValidateEmail(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return Errorf(ErrValidation, "invalid email format: %q", email)
	}
	return nil
}

func ValidatePhone(phone string) error {
	if !phoneRe.MatchString(strings.TrimSpace(phone)) {
		return Errorf(ErrValidation, "invalid phone format: %q", phone)
	}
	return nil
}

func ValidateSalaryRange(minSalary, maxSalary int) error {
	if minSalary < 0 || maxSalary < 0 {
		return Errorf(ErrValidation, "salary cannot be negative")
	}
	if minSalary > maxSalary {
		return Errorf(ErrValidation, "minimum salary cannot exceed maximum salary")
	}
	return nil
}

// RequireNonEmpty fails when the value is blank after trimming.
func RequireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Errorf(ErrValidation, "%s cannot be empty", field)
	}
	return nil
}
