package main

import (
	chatbotService "GlamoraBackend/internal/api/chatbot/service"
	"GlamoraBackend/internal/config"
	"GlamoraBackend/pkg/log"
	redisPkg "GlamoraBackend/pkg/redis"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.NewLogger().Fatalf("Error loading .env file: %v", err)
	}
	logger := log.NewLogger()

	chatbotCfg := chatbotService.NewConfigFromEnv()

	var redisClient *redis.Client
	if chatbotCfg.SessionStore == chatbotService.SessionStoreRedis || chatbotCfg.CacheDriver == chatbotService.CacheDriverRedis {
		redisClient = redisPkg.New()
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisClient(redisClient),
		config.WithChatbotConfig(chatbotCfg),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.WithField("classifier", chatbotCfg.Classifier).Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(10 * time.Second); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
