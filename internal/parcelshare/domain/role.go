package domain

// Role is a role tag as issued by the backend. Several historical spellings
// exist for the same kind of account.
type Role string

const (
	RoleTagParcel   Role = "ROLE_PARCEL"
	RoleTagSender   Role = "sender"
	RoleTagTraveler Role = "ROLE_TRAVELER"
	RoleTagCarrier  Role = "carrier"

	// DefaultRoleTag is stored when the backend omits the role.
	DefaultRoleTag Role = "user"
)

type RoleKind int

const (
	RoleGuest RoleKind = iota
	RoleSender
	RoleTraveler
)

// CanonicalRole maps a tag to its role kind; unknown tags are guests.
func CanonicalRole(tag Role) RoleKind {
	switch tag {
	case RoleTagParcel, RoleTagSender:
		return RoleSender
	case RoleTagTraveler, RoleTagCarrier:
		return RoleTraveler
	default:
		return RoleGuest
	}
}

func (k RoleKind) String() string {
	switch k {
	case RoleSender:
		return "sender"
	case RoleTraveler:
		return "traveler"
	default:
		return "guest"
	}
}
