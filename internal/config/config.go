package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Qdrant   QdrantConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port          string
	Env           string
	MaxUploadSize int64
}

type LogConfig struct {
	Debug bool
	JSON  bool
}

type DatabaseConfig struct {
	URL         string
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UsersTable  string
	AutoMigrate bool
	Timeout     time.Duration
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
	Timeout    time.Duration
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type StorageConfig struct {
	Driver     string
	UploadPath string
	S3         S3Config
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// LoadEnvFile reads a .env file from the working directory into the process
// environment. A missing file is reported but is not fatal to callers.
func LoadEnvFile() error {
	return godotenv.Load()
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("env", "development")
	v.SetDefault("max_upload_size", 52428800)
	v.SetDefault("debug", false)
	v.SetDefault("json", false)

	v.SetDefault("database_url", "")
	v.SetDefault("db_host", "")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "postgres")
	v.SetDefault("db_sslmode", "require")
	v.SetDefault("users_table", "user_data_vc_2")
	v.SetDefault("db_auto_migrate", true)
	v.SetDefault("store_timeout", "10s")

	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("gemini_embed_model", "text-embedding-004")
	v.SetDefault("ai_timeout", "20s")

	v.SetDefault("qdrant_url", "")
	v.SetDefault("qdrant_api_key", "")
	v.SetDefault("qdrant_collection", "career_guides")

	v.SetDefault("storage_driver", "local")
	v.SetDefault("upload_path", "./uploads")
	v.SetDefault("s3_bucket", "")
	v.SetDefault("s3_region", "auto")
	v.SetDefault("s3_endpoint", "")
	v.SetDefault("s3_access_key", "")
	v.SetDefault("s3_secret_key", "")
}

// Load builds the process configuration from v. Values come from bound CLI
// flags first, then the environment, then the defaults in SetDefaults.
func Load(v *viper.Viper) *Config {
	SetDefaults(v)
	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			Port:          v.GetString("port"),
			Env:           v.GetString("env"),
			MaxUploadSize: v.GetInt64("max_upload_size"),
		},
		Log: LogConfig{
			Debug: v.GetBool("debug"),
			JSON:  v.GetBool("json"),
		},
		Database: DatabaseConfig{
			URL:         v.GetString("database_url"),
			Host:        v.GetString("db_host"),
			Port:        v.GetString("db_port"),
			User:        v.GetString("db_user"),
			Password:    v.GetString("db_password"),
			DBName:      v.GetString("db_name"),
			SSLMode:     v.GetString("db_sslmode"),
			UsersTable:  v.GetString("users_table"),
			AutoMigrate: v.GetBool("db_auto_migrate"),
			Timeout:     v.GetDuration("store_timeout"),
		},
		Gemini: GeminiConfig{
			APIKey:     v.GetString("gemini_api_key"),
			Model:      v.GetString("gemini_model"),
			EmbedModel: v.GetString("gemini_embed_model"),
			Timeout:    v.GetDuration("ai_timeout"),
		},
		Qdrant: QdrantConfig{
			URL:        v.GetString("qdrant_url"),
			APIKey:     v.GetString("qdrant_api_key"),
			Collection: v.GetString("qdrant_collection"),
		},
		Storage: StorageConfig{
			Driver:     v.GetString("storage_driver"),
			UploadPath: v.GetString("upload_path"),
			S3: S3Config{
				Bucket:    v.GetString("s3_bucket"),
				Region:    v.GetString("s3_region"),
				Endpoint:  v.GetString("s3_endpoint"),
				AccessKey: v.GetString("s3_access_key"),
				SecretKey: v.GetString("s3_secret_key"),
			},
		},
	}
}

// Enabled reports whether a table store has been configured at all.
func (d DatabaseConfig) Enabled() bool {
	return d.URL != "" || d.Host != ""
}

func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
