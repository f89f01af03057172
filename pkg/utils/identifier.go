package utils

import "regexp"

// IdentifierKind tells which shape a login identifier has.
type IdentifierKind int

const (
	IdentifierInvalid IdentifierKind = iota
	IdentifierEmail
	IdentifierPhone
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

func (k IdentifierKind) String() string {
	switch k {
	case IdentifierEmail:
		return "email"
	case IdentifierPhone:
		return "phone"
	default:
		return "invalid"
	}
}

// ClassifyIdentifier reports whether s is email-shaped or a 10-digit phone
// number. No trimming or case folding is applied.
func ClassifyIdentifier(s string) IdentifierKind {
	switch {
	case emailPattern.MatchString(s):
		return IdentifierEmail
	case phonePattern.MatchString(s):
		return IdentifierPhone
	default:
		return IdentifierInvalid
	}
}
