package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	MongoURI    string        `yaml:"mongo_uri"`
	MongoDBName string        `yaml:"mongo_db_name"`
	SiteBaseURL string        `yaml:"site_base_url"`
	Categories  []string      `yaml:"categories"`
	Digest      DigestConfig  `yaml:"digest"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DigestConfig holds the knobs for the weekly top-5 email batch.
type DigestConfig struct {
	// Subject line of every digest email.
	Subject string `yaml:"subject"`

	// FromEmail must be a sender address verified with the email provider.
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`

	// Concurrency caps the number of in-flight sends within one run.
	// 0 or less means unlimited.
	Concurrency int `yaml:"concurrency"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
