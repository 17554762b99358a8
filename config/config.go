package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// 存储模式
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	// 服务器配置
	Port string

	// 存储配置: memory 使用内置种子数据, postgres 使用数据库
	StorageMode string
	DatabaseURL string

	// 模拟配置
	TickInterval     time.Duration // 事件生成周期
	PushInterval     time.Duration // WebSocket 推送周期
	EventProbability float64       // 每个周期生成事件的概率

	// AMQP 配置 (可选, 为空则禁用事件发布)
	AMQPURL      string
	AMQPExchange string

	// 其他配置
	Environment string
}

func Load() *Config {
	// .env 不存在时静默忽略
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8000"),

		StorageMode: getEnv("STORAGE_MODE", StorageMemory),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/livescore?sslmode=disable"),

		TickInterval:     getEnvDuration("TICK_INTERVAL", 5*time.Second),
		PushInterval:     getEnvDuration("PUSH_INTERVAL", 3*time.Second),
		EventProbability: getEnvFloat("EVENT_PROBABILITY", defaultEventProbability),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "match_events"),

		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

// defaultEventProbability 每个生成周期触发新事件的概率。
// 历史版本中这个值从 0.02 到 0.5 不等, 统一定为 0.25。
const defaultEventProbability = 0.25

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 || f > 1 {
		return defaultValue
	}
	return f
}
