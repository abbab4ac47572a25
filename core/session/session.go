package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
	"github.com/Yash22022006-glitch/Student-Attendence/core/user"
)

// Views
const (
	ViewLogin View = iota + 1
	ViewDashboard
	ViewAttendanceTaker
	ViewStudentDetails
)

var (
	viewNames = map[View]string{
		ViewLogin:           "Login",
		ViewDashboard:       "Dashboard",
		ViewAttendanceTaker: "AttendanceTaker",
		ViewStudentDetails:  "StudentDetails",
	}
	viewValues = map[string]View{
		"Login":           ViewLogin,
		"Dashboard":       ViewDashboard,
		"AttendanceTaker": ViewAttendanceTaker,
		"StudentDetails":  ViewStudentDetails,
	}

	ErrUnknownView = errors.New("unknown view")
	// ErrNotFound is returned for tokens with no live session (logged out or never logged in).
	ErrNotFound = errors.New("session not found")
	// ErrInvalidNavigation is returned when a navigation guard rejects the request;
	// the session is left exactly as it was.
	ErrInvalidNavigation = errors.New("cannot view student details without a selected student")
)

// View is a closed screen identifier.
type View uint8

func ViewFromString(s string) (View, error) {
	if view, ok := viewValues[s]; ok {
		return view, nil
	}
	return 0, ErrUnknownView
}

func (v View) String() string {
	return viewNames[v]
}

func (v View) MarshalText() ([]byte, error) {
	name, ok := viewNames[v]
	if !ok {
		return nil, ErrUnknownView
	}
	return []byte(name), nil
}

func (v *View) UnmarshalText(text []byte) error {
	view, err := ViewFromString(string(text))
	if err != nil {
		return err
	}
	*v = view
	return nil
}

// Session tracks one signed-in user's current screen. SelectedStudentID is
// only meaningful on the StudentDetails view.
type Session struct {
	Token             string    `json:"-"`
	User              user.User `json:"user"`
	View              View      `json:"view"`
	SelectedStudentID string    `json:"selected_student_id,omitempty"`
}

// Manager owns all live sessions and is the only place view transitions happen.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	logger   core.Logger
}

func NewManager(logger core.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// Login opens a session on the Dashboard, except for parents who land
// directly on their child's StudentDetails view.
func (m *Manager) Login(usr user.User) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := &Session{
		Token: uuid.New().String(),
		User:  usr,
		View:  ViewDashboard,
	}
	if childID, ok := usr.ChildID(); ok {
		sess.View = ViewStudentDetails
		sess.SelectedStudentID = childID
	}
	m.sessions[sess.Token] = sess
	return *sess
}

func (m *Manager) Get(token string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if sess, ok := m.sessions[token]; ok {
		return *sess, nil
	}
	return Session{}, ErrNotFound
}

// Navigate moves the session to the requested view. A StudentDetails request
// must carry a student ID; without one it is rejected and logged, unless the
// user is a Parent, in which case their own child is substituted.
func (m *Manager) Navigate(token string, view View, studentID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return Session{}, ErrNotFound
	}

	switch view {
	case ViewDashboard, ViewAttendanceTaker:
		sess.View = view
	case ViewStudentDetails:
		if studentID == "" {
			childID, ok := sess.User.ChildID()
			if !ok {
				m.logger.Error(
					fmt.Sprintf("navigation rejected: user %s requested StudentDetails without a student", sess.User.ID),
					ErrInvalidNavigation,
				)
				return *sess, ErrInvalidNavigation
			}
			studentID = childID
		}
		sess.View = ViewStudentDetails
		sess.SelectedStudentID = studentID
	default:
		return *sess, ErrUnknownView
	}
	return *sess, nil
}

// Logout destroys the session; the token is gone along with any selection.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
