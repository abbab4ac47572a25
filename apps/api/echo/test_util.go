package echoapi

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
	"github.com/Yash22022006-glitch/Student-Attendence/core/analysis"
	"github.com/Yash22022006-glitch/Student-Attendence/core/session"
	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
	"github.com/Yash22022006-glitch/Student-Attendence/core/user"
	capturesvc "github.com/Yash22022006-glitch/Student-Attendence/services/capture"
	logsvc "github.com/Yash22022006-glitch/Student-Attendence/services/logger"
	textgensvc "github.com/Yash22022006-glitch/Student-Attendence/services/textgen"
	inmemdb "github.com/Yash22022006-glitch/Student-Attendence/storage/database/inmem"
)

type testOptions struct {
	cameraDisabled bool
	textgen        *textgensvc.DummyService
}

func newTestConfig() *core.Config {
	conf := &core.Config{
		TestMode:  true,
		Env:       "TEST",
		AppName:   "EduTrack",
		SecretKey: "test-secret",
	}
	conf.Server.JWTExpirationDelta = time.Hour
	return conf
}

func setupServer(t *testing.T, opts ...testOptions) Server {
	t.Helper()

	var opt testOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.textgen == nil {
		opt.textgen = textgensvc.NewDummyService("Attendance is on track.")
	}

	conf := newTestConfig()
	conf.Camera.Disabled = opt.cameraDisabled

	db, err := inmemdb.Open(inmemdb.Options{Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("setupServer() failed: %v", err)
	}

	logger := logsvc.NewStdLogger(log.New(ioutil.Discard, "", 0))
	stdSvc := student.NewService(inmemdb.NewStudentRepository(db))

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	trans, _ := uni.GetTranslator("en")
	core.InitValidators(validate, trans)
	student.InitValidators(validate, trans)

	return NewServer(ServerDeps{
		Conf:        conf,
		Logger:      logger,
		UserSvc:     user.NewService(inmemdb.NewUserRepository(db)),
		StudentSvc:  stdSvc,
		Sessions:    session.NewManager(logger),
		AnalysisSvc: analysis.NewService(opt.textgen, logger),
		Scanner:     capturesvc.NewScanner(capturesvc.NewSimDevice(conf), stdSvc, rand.New(rand.NewSource(1))),
		Validate:    validate,
		Translator:  trans,
	})
}

func doRequest(t *testing.T, srv Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("doRequest() failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decodeJSON() failed: %v\nbody: %s", err, rec.Body.String())
	}
}

func login(t *testing.T, srv Server, userID string) LoginResponse {
	t.Helper()

	rec := doRequest(t, srv, http.MethodPost, "/v1/session/login", "", LoginRequest{UserID: userID})
	if rec.Code != http.StatusOK {
		t.Fatalf("login(%s) failed: status %d: %s", userID, rec.Code, rec.Body.String())
	}
	var resp LoginResponse
	decodeJSON(t, rec, &resp)
	return resp
}
