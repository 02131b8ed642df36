package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "Daftar")
	Conf.SetDefault("address", "127.0.0.1:8337") // loopback only; the UI runs on the same device
	Conf.SetDefault("database.engine", "sqlite") // sqlite | inmem
	Conf.SetDefault("database.path", defaultDatabasePath())

	env := os.Getenv("ENV") // DEV (local; default), TEST, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
	}
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

// defaultDatabasePath places the database file in the user's config directory
// so records survive wherever the app is launched from.
func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "daftar", "daftar.db")
}
