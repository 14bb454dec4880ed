package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Role represents the authorization level of an account.
type Role int

// Supported role values.
const (
	// RoleUnset indicates no role has been assigned.
	// It is the zero value and can never be encoded.
	RoleUnset Role = iota

	// RoleAdmin grants full administrative access.
	RoleAdmin

	// RoleTeacher grants access to teaching features.
	RoleTeacher

	// RoleStudent is the regular learner role.
	RoleStudent
)

// DefaultRole is the role assigned to every provisioned account.
const DefaultRole = RoleStudent

// Valid reports whether r is one of the assignable roles.
func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleStudent
}

// String returns the role name used in name-encoded files and logs.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleTeacher:
		return "Teacher"
	case RoleStudent:
		return "Student"
	default:
		return "UNSET"
	}
}

// Code returns the numeric code used in code-encoded files:
// 0 for Admin, 1 for Teacher and 2 for Student.
func (r Role) Code() int {
	return int(r) - 1
}

// RoleEncoding selects how roles are written to and read from CSV cells.
type RoleEncoding string

const (
	// RoleEncodingName stores roles by name, e.g. "Student".
	RoleEncodingName RoleEncoding = "name"

	// RoleEncodingCode stores roles by numeric code, e.g. "2".
	RoleEncodingCode RoleEncoding = "code"
)

// ParseRoleEncoding validates a role encoding name.
func ParseRoleEncoding(value string) (RoleEncoding, error) {
	switch enc := RoleEncoding(strings.ToLower(strings.TrimSpace(value))); enc {
	case RoleEncodingName, RoleEncodingCode:
		return enc, nil
	default:
		return "", fmt.Errorf("invalid role encoding %q: must be %q or %q", value, RoleEncodingName, RoleEncodingCode)
	}
}

// Encode renders r as a CSV cell.
func (e RoleEncoding) Encode(r Role) (string, error) {
	if !r.Valid() {
		return "", fmt.Errorf("cannot encode role %d", int(r))
	}
	switch e {
	case RoleEncodingName:
		return r.String(), nil
	case RoleEncodingCode:
		return strconv.Itoa(r.Code()), nil
	default:
		return "", fmt.Errorf("unknown role encoding %q", string(e))
	}
}

// Decode parses a CSV cell into a Role. Names are matched case-sensitively
// and a cell is only accepted in the form of the receiver's encoding.
func (e RoleEncoding) Decode(value string) (Role, error) {
	switch e {
	case RoleEncodingName:
		for _, r := range []Role{RoleAdmin, RoleTeacher, RoleStudent} {
			if value == r.String() {
				return r, nil
			}
		}
		return RoleUnset, fmt.Errorf("unknown role name %q", value)
	case RoleEncodingCode:
		code, err := strconv.Atoi(value)
		if err != nil {
			return RoleUnset, fmt.Errorf("invalid role code %q", value)
		}
		r := Role(code + 1)
		if !r.Valid() {
			return RoleUnset, fmt.Errorf("role code %d out of range", code)
		}
		return r, nil
	default:
		return RoleUnset, fmt.Errorf("unknown role encoding %q", string(e))
	}
}
