package domain

import "strings"

// Role is the coarse permission level of a credential.
type Role string

const (
	// RolePlayer is assigned to every self-registered account.
	RolePlayer Role = "PLAYER"

	// RoleAdmin may manage the question catalogue.
	RoleAdmin Role = "ADMIN"
)

var roleRank = map[Role]int{
	RolePlayer: 1,
	RoleAdmin:  2,
}

// ParseRole converts a case-insensitive role name into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := roleRank[role]; !ok {
		return "", ErrInvalidRole
	}
	return role, nil
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants everything min grants (PLAYER < ADMIN).
// An unknown role satisfies nothing.
func (r Role) AtLeast(min Role) bool {
	rank, ok := roleRank[r]
	if !ok {
		return false
	}
	return rank >= roleRank[min]
}
