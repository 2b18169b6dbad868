package domain

type Role string

const (
	RoleNone            Role = "none"
	RoleAdmin           Role = "admin"
	RolePaymentVerifier Role = "paymentVerifier"
	RoleOrganiser       Role = "organiser"
)

// ResolveRole is the only place where a user's raw role field is turned into
// a Role. An organiser without an organisation has no organiser rights.
func ResolveRole(u *User) Role {
	if u == nil {
		return RoleNone
	}

	switch Role(u.Role) {
	case RoleAdmin:
		return RoleAdmin
	case RolePaymentVerifier:
		return RolePaymentVerifier
	case RoleOrganiser:
		if u.Organisation != "" {
			return RoleOrganiser
		}
	}

	return RoleNone
}

// IsAssignable reports whether raw is a role value a user record may carry.
func IsAssignable(raw string) bool {
	switch Role(raw) {
	case "", RoleAdmin, RolePaymentVerifier, RoleOrganiser:
		return true
	}
	return false
}

// Session is the authenticated caller of a request.
type Session struct {
	UserID string
	Role   Role
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s Session) CanVerifyPayments() bool {
	return s.Role == RoleAdmin || s.Role == RolePaymentVerifier
}

func (s Session) CanCreateEvents() bool {
	return s.Role == RoleAdmin || s.Role == RoleOrganiser
}

// CanManageEvent reports whether the caller may read rosters and mark
// attendance or check-ins for e.
func (s Session) CanManageEvent(e *Event) bool {
	if s.Role == RoleAdmin {
		return true
	}
	return s.Role == RoleOrganiser && e != nil && e.OrganiserID == s.UserID
}
