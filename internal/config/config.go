package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	DB         DBConfig
	Server     ServerConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Upload     UploadConfig
	OpenAI     OpenAIConfig
	Generation GenerationConfig
	Worker     WorkerConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

type UploadConfig struct {
	Dir            string
	MaxUploadBytes int64
}

type OpenAIConfig struct {
	Model         string
	DetectorModel string
}

type GenerationConfig struct {
	// Upper bound on the characters handed to the model per segment.
	MaxSegmentChars int
}

type WorkerConfig struct {
	Count     int
	QueueSize int
	ResultTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("upload.dir", "/uploads")
	viper.SetDefault("upload.max_bytes", 50*1024*1024)
	viper.SetDefault("openai.model", "gpt-4o")
	viper.SetDefault("openai.detector_model", "gpt-3.5-turbo-0125")
	viper.SetDefault("generation.max_segment_chars", 6000)
	viper.SetDefault("worker.count", 4)
	viper.SetDefault("worker.queue_size", 64)
	viper.SetDefault("worker.result_ttl", 24*time.Hour)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Env: viper.GetString("env"),
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("env"),
		},
		Upload: UploadConfig{
			Dir:            viper.GetString("upload.dir"),
			MaxUploadBytes: viper.GetInt64("upload.max_bytes"),
		},
		OpenAI: OpenAIConfig{
			Model:         viper.GetString("openai.model"),
			DetectorModel: viper.GetString("openai.detector_model"),
		},
		Generation: GenerationConfig{
			MaxSegmentChars: viper.GetInt("generation.max_segment_chars"),
		},
		Worker: WorkerConfig{
			Count:     viper.GetInt("worker.count"),
			QueueSize: viper.GetInt("worker.queue_size"),
			ResultTTL: viper.GetDuration("worker.result_ttl"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if uploadDir := os.Getenv("UPLOAD_DIR"); uploadDir != "" {
		config.Upload.Dir = uploadDir
	}

	return config, nil
}

func (c *Config) GetDSN() string {
	// Oracle DSN format: user/password@host:port/service
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
