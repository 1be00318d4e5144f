package auth

import (
	"github.com/barelyrics/barelyrics-api/internal/models"
)

// roleRanks orders admin roles by privilege
var roleRanks = map[string]int{
	models.RoleModerator: 1,
	models.RoleAdmin:     2,
	models.RoleDeveloper: 3,
}

// Satisfies reports whether actualRole grants at least the privilege of
// requiredRole. Unknown roles never satisfy anything.
func Satisfies(actualRole, requiredRole string) bool {
	actual, ok := roleRanks[actualRole]
	if !ok {
		return false
	}
	required, ok := roleRanks[requiredRole]
	if !ok {
		return false
	}
	return actual >= required
}
