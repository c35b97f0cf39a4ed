package domain

// Caller is the authenticated identity attached to a request after token
// verification. All capability flags are always present; handlers never probe
// for optional attributes.
type Caller struct {
	ID            string
	Role          string
	IsStaff       bool
	IsSuperuser   bool
	EmailVerified bool
	Authenticated bool
}

func (c Caller) IsAdminOrStaff() bool {
	return c.Authenticated && (c.Role == string(RoleAdmin) || c.IsStaff)
}

// AccessLevel is the declarative tier a route or object action requires.
type AccessLevel int

const (
	LevelPublic AccessLevel = iota
	LevelOwnerOrAdmin
	LevelAdminOrStaff
	LevelAdminOnly
)

func (l AccessLevel) String() string {
	switch l {
	case LevelPublic:
		return "public"
	case LevelOwnerOrAdmin:
		return "owner_or_admin"
	case LevelAdminOrStaff:
		return "admin_or_staff"
	case LevelAdminOnly:
		return "admin_only"
	default:
		return "unknown"
	}
}

// Authorize evaluates whether caller may perform an action gated by level.
// ownerID is only consulted for LevelOwnerOrAdmin; write distinguishes
// mutations from safe reads (reads under LevelOwnerOrAdmin are open).
func Authorize(c Caller, level AccessLevel, ownerID string, write bool) bool {
	switch level {
	case LevelPublic:
		return true
	case LevelOwnerOrAdmin:
		if !write {
			return true
		}
		if !c.Authenticated {
			return false
		}
		if ownerID != "" && c.ID == ownerID {
			return true
		}
		return c.Role == string(RoleAdmin) || c.IsStaff
	case LevelAdminOrStaff:
		return c.IsAdminOrStaff()
	case LevelAdminOnly:
		return c.Authenticated && c.IsSuperuser
	default:
		return false
	}
}
