package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
	"github.com/Yash22022006-glitch/Student-Attendence/core/session"
	"github.com/Yash22022006-glitch/Student-Attendence/core/user"
)

type sessionApi struct {
	conf     *core.Config
	users    *user.Service
	sessions *session.Manager
	validate *validator.Validate
}

func registerSessionAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := sessionApi{
		conf:     deps.Conf,
		users:    deps.UserSvc,
		sessions: deps.Sessions,
		validate: deps.Validate,
	}

	// the login screen's user list; roles are presentational, not secured
	g.GET("/users", api.queryUsers)

	sg := g.Group("/session")
	sg.POST("/login", api.login)

	ag := sg.Group("", jwt)
	ag.GET("", api.retrieve)
	ag.POST("/navigate", api.navigate)
	ag.POST("/logout", api.logout)
}

// Handlers

func (api *sessionApi) queryUsers(ctx echo.Context) error {
	users, err := api.users.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *sessionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.users.GetByID(ctx.Request().Context(), data.UserID)
	if err != nil {
		return errors.Wrap(err, "finding user by ID")
	}

	sess := api.sessions.Login(usr)
	token, err := generateToken(api.conf, getSessionClaims(sess, api.conf))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Session: sess})
}

func (api *sessionApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx, api.sessions)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *sessionApi) navigate(ctx echo.Context) error {
	var data NavigateRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NavigateRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	view, err := session.ViewFromString(data.View)
	if err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	sess, err := api.sessions.Navigate(claims.SessionID, view, data.StudentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *sessionApi) logout(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	api.sessions.Logout(claims.SessionID)
	return ctx.NoContent(http.StatusNoContent)
}
