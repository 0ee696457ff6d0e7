package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	delivery "eventic-backend/internal/delivery/http"
	"eventic-backend/internal/repo/cockroach"
	"eventic-backend/internal/repo/redis"
	"eventic-backend/internal/usecase/service"
	"eventic-backend/pkg/connector"
	"eventic-backend/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Info(".env файл не обнаружен")
	}
}

func main() {
	// Настройка контекста для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	// Получаем переменные окружения
	dbConnectDSN := os.Getenv("DB_CONNECT_DSN")
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDBStr := os.Getenv("REDIS_DB")
	cacheTTLStr := os.Getenv("STATS_CACHE_TTL")
	serverAddress := os.Getenv("STATS_SERVER_ADDRESS")
	if serverAddress == "" {
		serverAddress = "0.0.0.0:8081"
	}
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	if dbConnectDSN == "" {
		log.Fatal("DB_CONNECT_DSN переменная окружения обязательна")
	}

	redisDB := 0
	if redisDBStr != "" {
		parsed, err := strconv.Atoi(redisDBStr)
		if err != nil {
			log.Fatalf("Неверный формат REDIS_DB: %v", err)
		}
		redisDB = parsed
	}

	// Парсим время жизни кэша (по умолчанию 1 минута)
	cacheTTL := 1 * time.Minute
	if cacheTTLStr != "" {
		if parsedTTL, err := time.ParseDuration(cacheTTLStr); err == nil {
			cacheTTL = parsedTTL
		} else {
			log.Warnf("Неверный формат STATS_CACHE_TTL: %s, используется 1m", cacheTTLStr)
		}
	}

	// Подключение к базе данных
	dbConn, err := connector.GetCockroachConnector(dbConnectDSN)
	if err != nil {
		log.Fatalf("Ошибка при подключении к базе данных: %v", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			log.Errorf("Ошибка при закрытии соединения с базой данных: %v", err)
		}
	}()

	// Подключение к Redis
	redisClient, err := connector.GetRedisConnector(redisAddr, redisPassword, redisDB)
	if err != nil {
		log.Fatalf("Ошибка при подключении к Redis: %v", err)
	}

	// Инициализация репозиториев
	statsRepo := cockroach.NewStats(dbConn)
	statsCache := redis.NewStatsCache(redisClient, cacheTTL)

	// Инициализация usecase и delivery
	statsUseCase := service.NewStats(statsRepo, statsCache)
	statsDelivery := delivery.NewStats(statsUseCase)

	// REST API
	echoServer := echo.New()
	echoServer.Use(middleware.RequestID())
	m := metrics.New()
	echoServer.Use(metrics.Middleware(m))

	echoServer.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	statsDelivery.Configure(echoServer.Group(""))

	go func(server *echo.Echo) {
		if err := server.Start(serverAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
			server.Logger.Fatalf("Сервер завершил свою работу по причине: %v\n", err)
		}
	}(echoServer)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(10)*time.Second,
	)
	defer cancel()
	if err := echoServer.Shutdown(shutdownCtx); err != nil {
		echoServer.Logger.Fatalf("Во время выключения сервера возникла ошибка: %s\n", err)
	}
}
