package di

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	"freshmart-client/app/config"
	"freshmart-client/app/driver/filestore"
	"freshmart-client/app/driver/httpx"
	"freshmart-client/app/driver/redisstore"
	"freshmart-client/app/driver/rest"
	"freshmart-client/app/gateway"
	"freshmart-client/app/port"
	"freshmart-client/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	Store     port.StateStore
	Vault     *httpx.Vault
	Transport *httpx.AuthTransport
	REST      *rest.Client

	// Gateways
	AuthGateway  port.AuthGateway
	CartGateway  port.CartGateway
	KioskGateway port.KioskGateway

	// Usecases
	SessionUsecase port.SessionUsecase
	CartUsecase    port.CartUsecase
	KioskUsecase   port.KioskUsecase

	redisClient *redis.Client
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize state persistence
	var err error
	switch cfg.StateBackend {
	case config.StateBackendRedis:
		container.redisClient, err = redisstore.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis store: %w", err)
		}
		container.Store = redisstore.New(container.redisClient, "freshmart")
	default:
		container.Store, err = filestore.New(cfg.StatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file store: %w", err)
		}
	}

	// Initialize the credential vault and authorizing transport
	container.Vault = httpx.NewVault(container.Store, logger)

	refreshURL := strings.TrimRight(cfg.APIBaseURL, "/") + "/token/refresh/"
	container.Transport = httpx.NewAuthTransport(container.Vault, refreshURL, cfg.TokenExpirySkew, logger)

	httpClient := &http.Client{
		Transport: container.Transport,
		Timeout:   cfg.HTTPTimeout,
	}

	container.REST, err = rest.NewClient(cfg.APIBaseURL, httpClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize API client: %w", err)
	}

	// Initialize gateways
	container.AuthGateway = gateway.NewAuthGateway(container.REST, logger)
	container.CartGateway = gateway.NewCartGateway(container.REST, logger)
	container.KioskGateway = gateway.NewKioskGateway(container.REST, logger)

	// Initialize usecases
	sessionUC := usecase.NewSessionUseCase(container.Vault, container.AuthGateway, cfg.TokenExpirySkew, logger)
	container.SessionUsecase = sessionUC
	container.CartUsecase = usecase.NewCartUseCase(sessionUC, container.CartGateway, logger)
	container.KioskUsecase = usecase.NewKioskUseCase(container.Store, container.KioskGateway, container.CartGateway, logger)

	// A terminal refresh failure invalidates the session everywhere
	container.Transport.SetReauthHook(sessionUC.HandleReauth)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// Close closes all resources
func (c *Container) Close() error {
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
