package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Yash22022006-glitch/Student-Attendence/core/analysis"
	"github.com/Yash22022006-glitch/Student-Attendence/core/session"
	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
	capturesvc "github.com/Yash22022006-glitch/Student-Attendence/services/capture"
)

type studentApi struct {
	students *student.Service
	analysis *analysis.Service
	scanner  *capturesvc.Scanner
	sessions *session.Manager
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := studentApi{
		students: deps.StudentSvc,
		analysis: deps.AnalysisSvc,
		scanner:  deps.Scanner,
		sessions: deps.Sessions,
		validate: deps.Validate,
	}

	sg := g.Group("/students", jwt)
	sg.GET("", api.query)
	sg.GET("/stats", api.stats)
	sg.GET("/analysis", api.classAnalysis)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("/attendance", api.markAttendance)
	dg.GET("/summary", api.parentSummary)

	g.POST("/attendance/scan", api.scan, jwt)
}

// scopedStudents queries the students visible to the session user.
func (api *studentApi) scopedStudents(ctx echo.Context) ([]student.Student, error) {
	sess, err := getContextSession(ctx, api.sessions)
	if err != nil {
		return nil, err
	}
	students, err := api.students.Query(ctx.Request().Context(), sess.User.Scope())
	if err != nil {
		return nil, errors.Wrap(err, "querying students in scope")
	}
	return students, nil
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	students, err := api.scopedStudents(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newStudentResponses(students))
}

func (api *studentApi) stats(ctx echo.Context) error {
	students, err := api.scopedStudents(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, student.Summarize(students))
}

func (api *studentApi) classAnalysis(ctx echo.Context) error {
	students, err := api.scopedStudents(ctx)
	if err != nil {
		return err
	}
	text := api.analysis.ClassAnalysis(ctx.Request().Context(), students)
	return ctx.JSON(http.StatusOK, AnalysisResponse{Analysis: text})
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	st, err := api.students.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding student by ID")
	}
	return ctx.JSON(http.StatusOK, newStudentResponse(st))
}

func (api *studentApi) markAttendance(ctx echo.Context) error {
	var data MarkAttendanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MarkAttendanceRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	status, err := student.StatusFromString(data.Status)
	if err != nil {
		return err
	}
	st, err := api.students.Mark(ctx.Request().Context(), ctx.Param("id"), status)
	if err != nil {
		return errors.Wrap(err, "marking attendance")
	}
	return ctx.JSON(http.StatusOK, newStudentResponse(st))
}

func (api *studentApi) parentSummary(ctx echo.Context) error {
	st, err := api.students.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding student by ID")
	}
	text := api.analysis.ParentSummary(ctx.Request().Context(), st)
	return ctx.JSON(http.StatusOK, AnalysisResponse{Analysis: text})
}

func (api *studentApi) scan(ctx echo.Context) error {
	sess, err := getContextSession(ctx, api.sessions)
	if err != nil {
		return err
	}
	st, err := api.scanner.Scan(ctx.Request().Context(), sess.User.Scope())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newStudentResponse(st))
}
