package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	Bucket         string

	RedisAddr     string
	RedisPassword string

	JWTPublicKey string

	// remote ASR (DashScope paraformer)
	DashScopeAPIKey     string
	DashScopeAPIBase    string
	TranscribeMaxTries  int
	TranscribeInterval  time.Duration
	TranscribeLangHints []string

	// LLM providers
	OpenAIAPIKey       string
	OpenAIAPIBase      string
	OpenAIModel        string
	DashScopeModel     string
	DefaultLLMProvider string

	// audio conversion
	FFmpegBin       string
	AudioBitrate    string
	AudioSampleRate int
	WorkDir         string

	WorkerConcurrency   int
	WorldBackgroundPath string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	for _, key := range []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
	} {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("BUCKET", "medias")
	viper.SetDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("DASHSCOPE_API_BASE", "https://dashscope.aliyuncs.com/api/v1")
	viper.SetDefault("DASHSCOPE_MODEL", "qwen-max")
	viper.SetDefault("DEFAULT_LLM_PROVIDER", "openai")
	viper.SetDefault("TRANSCRIBE_MAX_ATTEMPTS", 120)
	viper.SetDefault("TRANSCRIBE_POLL_INTERVAL", 5)
	viper.SetDefault("TRANSCRIBE_LANGUAGE_HINTS", "zh,en")
	viper.SetDefault("FFMPEG_BIN", "ffmpeg")
	viper.SetDefault("AUDIO_BITRATE", "64k")
	viper.SetDefault("AUDIO_SAMPLE_RATE", 16000)
	viper.SetDefault("WORK_DIR", filepath.Join(os.TempDir(), "transcripts-ms"))
	viper.SetDefault("WORKER_CONCURRENCY", 10)

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		Bucket:         viper.GetString("BUCKET"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		JWTPublicKey: viper.GetString("JWT_PUBLIC_KEY"),

		DashScopeAPIKey:     viper.GetString("DASHSCOPE_API_KEY"),
		DashScopeAPIBase:    viper.GetString("DASHSCOPE_API_BASE"),
		TranscribeMaxTries:  viper.GetInt("TRANSCRIBE_MAX_ATTEMPTS"),
		TranscribeInterval:  time.Duration(viper.GetInt("TRANSCRIBE_POLL_INTERVAL")) * time.Second,
		TranscribeLangHints: splitCSV(viper.GetString("TRANSCRIBE_LANGUAGE_HINTS")),

		OpenAIAPIKey:       viper.GetString("OPENAI_API_KEY"),
		OpenAIAPIBase:      viper.GetString("OPENAI_API_BASE"),
		OpenAIModel:        viper.GetString("OPENAI_MODEL"),
		DashScopeModel:     viper.GetString("DASHSCOPE_MODEL"),
		DefaultLLMProvider: viper.GetString("DEFAULT_LLM_PROVIDER"),

		FFmpegBin:       viper.GetString("FFMPEG_BIN"),
		AudioBitrate:    viper.GetString("AUDIO_BITRATE"),
		AudioSampleRate: viper.GetInt("AUDIO_SAMPLE_RATE"),
		WorkDir:         viper.GetString("WORK_DIR"),

		WorkerConcurrency:   viper.GetInt("WORKER_CONCURRENCY"),
		WorldBackgroundPath: viper.GetString("WORLD_BACKGROUND_PATH"),
	}, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
