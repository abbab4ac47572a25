package echoapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
	"github.com/Yash22022006-glitch/Student-Attendence/core/session"
	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
	"github.com/volatiletech/null/v8"
)

type LoginRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (r *LoginRequest) Validate(validate *validator.Validate) error {
	r.UserID = core.CleanString(r.UserID)
	return validate.Struct(r)
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Session session.Session `json:"session"`
}

type NavigateRequest struct {
	View      string `json:"view" validate:"required"`
	StudentID string `json:"student_id"`
}

func (r *NavigateRequest) Validate(validate *validator.Validate) error {
	r.View = core.CleanString(r.View)
	r.StudentID = core.CleanString(r.StudentID)
	return validate.Struct(r)
}

type MarkAttendanceRequest struct {
	Status string `json:"status" validate:"required,status"`
}

func (r *MarkAttendanceRequest) Validate(validate *validator.Validate) error {
	r.Status = core.CleanString(r.Status)
	return validate.Struct(r)
}

// StudentResponse decorates a student with their table-display rate;
// attendance_rate is null when the student has no records yet.
type StudentResponse struct {
	student.Student
	AttendanceRate null.Int `json:"attendance_rate"`
}

func newStudentResponse(st student.Student) StudentResponse {
	return StudentResponse{Student: st, AttendanceRate: st.AttendanceRate()}
}

func newStudentResponses(students []student.Student) []StudentResponse {
	resps := make([]StudentResponse, 0, len(students))
	for _, st := range students {
		resps = append(resps, newStudentResponse(st))
	}
	return resps
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
