package domain

// Principal is the verified identity of a caller, reconstructed entirely
// from access token claims. It carries no credential material and is passed
// explicitly to any operation that needs the caller's identity.
type Principal struct {
	StaffID int64
	Email   string
	Roles   []StaffRole
}

// HasRole reports whether the principal holds the given role.
func (p *Principal) HasRole(role StaffRole) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
