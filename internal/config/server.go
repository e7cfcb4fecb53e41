package config

import (
	"GlamoraBackend/database/postgres"
	chatbotHandler "GlamoraBackend/internal/api/chatbot/handler"
	chatbotService "GlamoraBackend/internal/api/chatbot/service"
	orderHandler "GlamoraBackend/internal/api/order/handler"
	orderRepository "GlamoraBackend/internal/api/order/repository"
	orderService "GlamoraBackend/internal/api/order/service"
	productHandler "GlamoraBackend/internal/api/product/handler"
	productRepository "GlamoraBackend/internal/api/product/repository"
	productService "GlamoraBackend/internal/api/product/service"
	"GlamoraBackend/internal/middleware"
	"GlamoraBackend/pkg/search"
	"GlamoraBackend/pkg/utils"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	redisClient *redis.Client
	chatbotCfg  chatbotService.Config
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{chatbotCfg: chatbotService.DefaultConfig()}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

// WithDB uses an existing connection instead of dialing one.
func WithDB(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		s.db = db
		return nil
	}
}

func WithRedisClient(client *redis.Client) ServerOption {
	return func(s *Server) error {
		s.redisClient = client
		return nil
	}
}

func WithChatbotConfig(cfg chatbotService.Config) ServerOption {
	return func(s *Server) error {
		s.chatbotCfg = cfg
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	if s.validator == nil {
		s.validator = NewValidator()
	}
	if s.utils == nil {
		s.utils = utils.New()
	}
	if s.middleware == nil {
		s.middleware = middleware.New(s.log)
	}

	// Product Domain
	productRepo := productRepository.New(s.db, s.log)
	cache := chatbotService.NewCache(s.chatbotCfg, s.redisClient, s.log)
	engine := search.New(productService.NewCatalog(s.log, productRepo), cache, s.log)
	productServices := productService.NewProductService(s.log, productRepo, engine)
	productHandlers := productHandler.New(s.log, s.validator, s.middleware, productServices)

	// Order Domain
	orderRepo := orderRepository.New(s.db, s.log)
	orderServices := orderService.NewOrderService(s.log, orderRepo)
	orderHandlers := orderHandler.New(s.log, s.middleware, orderServices)

	// Chatbot
	store := chatbotService.NewSessionStore(s.chatbotCfg, s.redisClient, s.log)
	chatbotServices := chatbotService.NewChatbotService(s.log, s.chatbotCfg, store, engine, orderRepo, s.utils)
	chatbotHandlers := chatbotHandler.New(s.log, s.validator, s.middleware, chatbotServices)

	s.handlers = append(s.handlers, chatbotHandlers, productHandlers, orderHandlers)
}

func (s *Server) setupRoutes() {
	s.engine.Use(recover.New())
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	s.setupHealthCheck()

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) Run() error {
	s.setupRoutes()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown drains in-flight requests and closes the connections the server owns.
func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if closeErr := s.db.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		c, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()

		status := fiber.Map{"message": "Server is Healthy!", "database": "up"}
		if err := s.db.PingContext(c); err != nil {
			status["database"] = "down"
		}
		if s.redisClient != nil {
			status["redis"] = "up"
			if err := s.redisClient.Ping(c).Err(); err != nil {
				status["redis"] = "down"
			}
		}
		return ctx.JSON(status)
	})
}
