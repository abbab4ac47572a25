package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug     bool
	TestMode  bool
	Env       string // DEV (local; default), TEST, QA, PROD
	Build     string
	AppName   string
	SecretKey string

	Server struct {
		Host               string
		DebugHost          string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	// Store configures the in-memory attendance store.
	Store struct {
		// Latency is the artificial delay applied to every store call so the
		// frontend can exercise its loading states. Zero disables it.
		Latency time.Duration
		// SeedDays is the number of calendar days of attendance synthesized
		// for each student at start-up.
		SeedDays int
	}

	Gemini struct {
		APIKey string
		Model  string
	}

	Camera struct {
		Disabled bool
	}

	RollbarToken string
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "EduTrack")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "x#2b$0y)1q&(m8#ne+c7=_4fz@5d!wop9r^g6u*hjs3%kt-lv")
	v.SetDefault("serverHost", ":8000")
	v.SetDefault("serverDebugHost", ":4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("storeLatency", 500*time.Millisecond)
	v.SetDefault("storeSeedDays", 30)
	v.SetDefault("geminiApiKey", "")
	v.SetDefault("geminiModel", "gemini-2.5-flash")
	v.SetDefault("cameraDisabled", false)
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("storeLatency", time.Duration(0))
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Env:          env,
		Build:        v.GetString("build"),
		AppName:      v.GetString("appName"),
		SecretKey:    v.GetString("secretKey"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.DebugHost = v.GetString("serverDebugHost")
	conf.Server.ShutdownTimeout = v.GetDuration("serverShutdownTimeout")
	conf.Server.JWTExpirationDelta = v.GetDuration("jwtExpirationDelta")
	conf.Store.Latency = v.GetDuration("storeLatency")
	conf.Store.SeedDays = v.GetInt("storeSeedDays")
	conf.Gemini.APIKey = v.GetString("geminiApiKey")
	conf.Gemini.Model = v.GetString("geminiModel")
	conf.Camera.Disabled = v.GetBool("cameraDisabled")
	return conf
}
