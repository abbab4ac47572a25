package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/Yash22022006-glitch/Student-Attendence/apps/api/echo"
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

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up the in-memory store; data is re-seeded on every start
	db, err := inmemdb.Open(inmemdb.Options{
		Latency:  conf.Store.Latency,
		SeedDays: conf.Store.SeedDays,
	})
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}

	// set up services
	usrSvc := user.NewService(inmemdb.NewUserRepository(db))
	stdSvc := student.NewService(inmemdb.NewStudentRepository(db))
	sessions := session.NewManager(logger)
	analysisSvc := analysis.NewService(textgensvc.NewGeminiService(conf), logger)
	scanner := capturesvc.NewScanner(capturesvc.NewSimDevice(conf), stdSvc, nil)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	if conf.Gemini.APIKey == "" {
		logger.Warn("Gemini API key not found; analysis features are disabled")
	}

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      logger,
			UserSvc:     usrSvc,
			StudentSvc:  stdSvc,
			Sessions:    sessions,
			AnalysisSvc: analysisSvc,
			Scanner:     scanner,
			Validate:    validate,
			Translator:  translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
