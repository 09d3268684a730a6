package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin        = 1
	RoleIDDoctor       = 2
	RoleIDNurse        = 3
	RoleIDReceptionist = 4
	RoleIDPatient      = 5
)

// RoleNames constants
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleNurse        = "nurse"
	RoleReceptionist = "receptionist"
	RolePatient      = "patient"
)

var roleNamesByID = map[int]string{
	RoleIDAdmin:        RoleAdmin,
	RoleIDDoctor:       RoleDoctor,
	RoleIDNurse:        RoleNurse,
	RoleIDReceptionist: RoleReceptionist,
	RoleIDPatient:      RolePatient,
}

// RoleNameByID resolves a role ID to its name, empty string if unknown
func RoleNameByID(id int) string {
	return roleNamesByID[id]
}
