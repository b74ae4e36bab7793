package middleware

// Owns is the single ownership predicate every mutating handler uses.
// Identity comparison is by string user id.
func Owns(actorID, ownerID string) bool {
	return actorID != "" && actorID == ownerID
}

// IsAdmin reports whether the role set carries admin. Admins may
// delete foreign content but never edit it.
func IsAdmin(roles []string) bool {
	for _, r := range roles {
		if r == "admin" {
			return true
		}
	}
	return false
}

// CanDelete allows the owner or an admin.
func CanDelete(actorID, ownerID string, roles []string) bool {
	return Owns(actorID, ownerID) || IsAdmin(roles)
}
