package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"livescore-service/config"
	"livescore-service/database"
	"livescore-service/logger"
	"livescore-service/services"
	"livescore-service/web"
)

func main() {
	logger.Println("Starting Live Score Service...")

	// 加载配置
	cfg := config.Load()

	// 构建状态存储, 存储模式在此处一次性确定
	store, err := buildStore(cfg)
	if err != nil {
		logger.Fatalf("Failed to build match store: %v", err)
	}

	// 事件发布器 (可选)
	var publisher services.EventPublisher
	var amqpPublisher *services.AMQPPublisher
	if cfg.AMQPURL != "" {
		amqpPublisher = services.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err := amqpPublisher.Connect(); err != nil {
			logger.Errorf("AMQP publisher disabled: %v", err)
			amqpPublisher = nil
		} else {
			publisher = amqpPublisher
		}
	}

	// 事件生成器 + 模拟驱动器
	generator := services.NewEventGenerator(services.NewRand(0), cfg.EventProbability)
	simulator := services.NewSimulator(store, generator, cfg.TickInterval, nil, publisher)
	simulator.Start()

	logger.Printf("Simulator started (tick: %v, push: %v, probability: %.2f)",
		cfg.TickInterval, cfg.PushInterval, cfg.EventProbability)

	// WebSocket Hub + Web服务器
	wsHub := web.NewHub()
	server := web.NewServer(cfg, store, simulator, wsHub)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Web server error: %v", err)
		}
	}()

	logger.Printf("Web server started on port %s", cfg.Port)
	logger.Println("Service is running. Press Ctrl+C to stop.")

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Println("Shutting down service...")

	// 清理资源
	simulator.Stop()
	server.Stop()
	if amqpPublisher != nil {
		amqpPublisher.Close()
	}

	logger.Println("Service stopped")
}

// buildStore 根据配置选择存储模式: postgres 写穿数据库, memory 使用种子数据
func buildStore(cfg *config.Config) (services.MatchStore, error) {
	switch cfg.StorageMode {
	case config.StoragePostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		logger.Println("Database connected and migrated")

		repo := database.NewMatchRepository(db)

		// 空库自动写入种子数据
		existing, err := repo.LoadAll()
		if err != nil {
			return nil, err
		}
		if len(existing) == 0 {
			logger.Println("Database is empty, seeding demo matches")
			for _, m := range services.SeedMatches(time.Now()) {
				if err := repo.InsertMatch(m); err != nil {
					return nil, err
				}
			}
		}

		return services.NewPersistentStore(repo)

	default:
		logger.Println("Using in-memory store with seed data")
		return services.NewMemoryStore(services.SeedMatches(time.Now())), nil
	}
}
