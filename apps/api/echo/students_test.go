package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yash22022006-glitch/Student-Attendence/core/analysis"
	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
	textgensvc "github.com/Yash22022006-glitch/Student-Attendence/services/textgen"
)

func TestQueryStudents(t *testing.T) {
	srv := setupServer(t)

	t.Run("admin sees every student", func(t *testing.T) {
		resp := login(t, srv, "u001")

		rec := doRequest(t, srv, http.MethodGet, "/v1/students", resp.Token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var students []StudentResponse
		decodeJSON(t, rec, &students)
		assert.Len(t, students, 5)
	})

	t.Run("teacher sees their class only", func(t *testing.T) {
		resp := login(t, srv, "u002")

		rec := doRequest(t, srv, http.MethodGet, "/v1/students", resp.Token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var students []StudentResponse
		decodeJSON(t, rec, &students)
		assert.Len(t, students, 3)
		for _, st := range students {
			assert.Equal(t, "Grade 5", st.Class)
			assert.True(t, st.AttendanceRate.Valid)
		}
	})
}

func TestRetrieveStudent(t *testing.T) {
	srv := setupServer(t)
	resp := login(t, srv, "u001")

	rec := doRequest(t, srv, http.MethodGet, "/v1/students/s001", resp.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var st StudentResponse
	decodeJSON(t, rec, &st)
	assert.Equal(t, "Alice Johnson", st.Name)
	assert.True(t, st.AttendanceRate.Valid)

	rec = doRequest(t, srv, http.MethodGet, "/v1/students/nope", resp.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkAttendance(t *testing.T) {
	srv := setupServer(t)
	resp := login(t, srv, "u002")

	countToday := func(st student.Student) (int, student.Status) {
		today := student.Today()
		var n int
		var last student.Status
		for _, rec := range st.Attendance {
			if rec.Date.Equal(today) {
				n++
				last = rec.Status
			}
		}
		return n, last
	}

	rec := doRequest(t, srv, http.MethodPut, "/v1/students/s001/attendance", resp.Token,
		MarkAttendanceRequest{Status: "Late"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var st StudentResponse
	decodeJSON(t, rec, &st)
	n, last := countToday(st.Student)
	assert.Equal(t, 1, n)
	assert.Equal(t, student.StatusLate, last)

	// same day again: upsert, not append
	rec = doRequest(t, srv, http.MethodPut, "/v1/students/s001/attendance", resp.Token,
		MarkAttendanceRequest{Status: "Absent"})
	assert.Equal(t, http.StatusOK, rec.Code)

	decodeJSON(t, rec, &st)
	n, last = countToday(st.Student)
	assert.Equal(t, 1, n)
	assert.Equal(t, student.StatusAbsent, last)

	t.Run("invalid status", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPut, "/v1/students/s001/attendance", resp.Token,
			MarkAttendanceRequest{Status: "Sleeping"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "must be one of")
	})

	t.Run("unknown student", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPut, "/v1/students/nope/attendance", resp.Token,
			MarkAttendanceRequest{Status: "Present"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStats(t *testing.T) {
	srv := setupServer(t)
	resp := login(t, srv, "u002")

	rec := doRequest(t, srv, http.MethodGet, "/v1/students/stats", resp.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var summary student.Summary
	decodeJSON(t, rec, &summary)
	assert.True(t, summary.Rate.Valid)
	assert.GreaterOrEqual(t, summary.Rate.Float64, float64(0))
	assert.LessOrEqual(t, summary.Rate.Float64, float64(100))
	assert.NotEmpty(t, summary.StatusCounts)
}

func TestAnalysisEndpoints(t *testing.T) {
	t.Run("returns the generated prose", func(t *testing.T) {
		gen := textgensvc.NewDummyService("Keep an eye on Monday absences.")
		srv := setupServer(t, testOptions{textgen: gen})
		resp := login(t, srv, "u002")

		rec := doRequest(t, srv, http.MethodGet, "/v1/students/analysis", resp.Token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var analysisResp AnalysisResponse
		decodeJSON(t, rec, &analysisResp)
		assert.Equal(t, "Keep an eye on Monday absences.", analysisResp.Analysis)

		rec = doRequest(t, srv, http.MethodGet, "/v1/students/s001/summary", resp.Token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		decodeJSON(t, rec, &analysisResp)
		assert.Equal(t, "Keep an eye on Monday absences.", analysisResp.Analysis)
	})

	t.Run("not configured falls back safely", func(t *testing.T) {
		gen := textgensvc.NewDummyService("unused")
		gen.Disabled = true
		srv := setupServer(t, testOptions{textgen: gen})
		resp := login(t, srv, "p001")

		rec := doRequest(t, srv, http.MethodGet, "/v1/students/s001/summary", resp.Token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var analysisResp AnalysisResponse
		decodeJSON(t, rec, &analysisResp)
		assert.Equal(t, analysis.MsgNotConfigured, analysisResp.Analysis)
		assert.Empty(t, gen.Prompts)
	})
}

func TestScan(t *testing.T) {
	t.Run("marks a recognized student present", func(t *testing.T) {
		srv := setupServer(t)
		resp := login(t, srv, "u002")

		rec := doRequest(t, srv, http.MethodPost, "/v1/attendance/scan", resp.Token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var st StudentResponse
		decodeJSON(t, rec, &st)
		assert.Equal(t, "Grade 5", st.Class)

		today := student.Today()
		var found bool
		for _, r := range st.Attendance {
			if r.Date.Equal(today) {
				found = true
				assert.Equal(t, student.StatusPresent, r.Status)
			}
		}
		assert.True(t, found, "expected a record for today")
	})

	t.Run("camera unavailable", func(t *testing.T) {
		srv := setupServer(t, testOptions{cameraDisabled: true})
		resp := login(t, srv, "u002")

		rec := doRequest(t, srv, http.MethodPost, "/v1/attendance/scan", resp.Token, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
