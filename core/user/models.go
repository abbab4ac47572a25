package user

import (
	"github.com/pkg/errors"

	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
)

// Roles
const (
	RoleAdmin Role = iota + 1
	RoleTeacher
	RoleParent
)

var (
	roleNames = map[Role]string{
		RoleAdmin:   "Admin",
		RoleTeacher: "Teacher",
		RoleParent:  "Parent",
	}
	roleValues = map[string]Role{
		"Admin":   RoleAdmin,
		"Teacher": RoleTeacher,
		"Parent":  RoleParent,
	}

	ErrUnknownRole = errors.New("unknown role")
)

// Role is a closed user role; one of Admin, Teacher or Parent.
type Role uint8

func RoleFromString(s string) (Role, error) {
	if role, ok := roleValues[s]; ok {
		return role, nil
	}
	return 0, ErrUnknownRole
}

func (r Role) String() string {
	return roleNames[r]
}

func (r Role) MarshalText() ([]byte, error) {
	name, ok := roleNames[r]
	if !ok {
		return nil, ErrUnknownRole
	}
	return []byte(name), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	role, err := RoleFromString(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// User is an application account. AssociatedID's meaning depends on Role:
// the scope sentinel "all" for an Admin, a class name for a Teacher, and a
// student ID for a Parent.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	AssociatedID string `json:"associated_id"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

func (u User) IsParent() bool {
	return u.Role == RoleParent
}

// Scope resolves the student-list scope the user may view: everything for an
// Admin, their class for a Teacher. A Parent's AssociatedID is a student ID
// and matches no class, so their list scope is empty; parents view their
// single child instead (see ChildID).
func (u User) Scope() string {
	switch u.Role {
	case RoleAdmin:
		return student.ScopeAll
	case RoleTeacher, RoleParent:
		return u.AssociatedID
	}
	return ""
}

// ChildID returns the associated student ID for a Parent.
func (u User) ChildID() (string, bool) {
	if u.Role == RoleParent && u.AssociatedID != "" {
		return u.AssociatedID, true
	}
	return "", false
}
