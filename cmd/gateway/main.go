package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	delivery "eventic-backend/internal/delivery/http"
	"eventic-backend/internal/delivery/http/utils"
	"eventic-backend/internal/repo/cockroach"
	"eventic-backend/internal/repo/kafka"
	"eventic-backend/internal/usecase/service"
	"eventic-backend/pkg/connector"
	"eventic-backend/pkg/goosehelper"
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

	// Выполнить миграции при старте
	dbConnectDSN := os.Getenv("DB_CONNECT_DSN")
	DBConn, err := connector.GetCockroachConnector(dbConnectDSN)
	if err != nil {
		log.Fatalf("Ошибка при подключении к базе данных: %v", err)
	}
	// Получаем *sql.DB из *sqlx.DB
	sqldb := DBConn.DB
	migrationsDir := "./cockroachdb/migrations"
	goosehelper.MigrateUp(sqldb, migrationsDir)
	if err := DBConn.Close(); err != nil {
		log.Fatalf("Ошибка при закрытии соединения с базой данных: %v", err)
	}
}

func main() {
	// Настройка контекста для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	// Получаем переменные окружения
	dbConnectDSN := os.Getenv("DB_CONNECT_DSN")
	jwtSecret := os.Getenv("JWT_SECRET")
	kafkaBrokersStr := os.Getenv("KAFKA_BROKERS")
	statsServiceURL := os.Getenv("STATS_SERVICE_URL")
	serverAddress := os.Getenv("SERVER_ADDRESS")
	if serverAddress == "" {
		serverAddress = "0.0.0.0:8080"
	}

	if dbConnectDSN == "" {
		log.Fatal("DB_CONNECT_DSN переменная окружения обязательна")
	}
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET переменная окружения обязательна")
	}
	if kafkaBrokersStr == "" {
		log.Fatal("KAFKA_BROKERS переменная окружения обязательна")
	}
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")

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

	// запускаем сервисы репозиториев (подключение к базе данных и кафке)
	userRepo := cockroach.NewUser(dbConn)
	eventRepo := cockroach.NewEvent(dbConn)
	commentRepo := cockroach.NewComment(dbConn)
	hitEventRepo, err := kafka.NewHitEventKafkaRepository(kafkaBrokers, "eventic-gateway")
	if err != nil {
		log.Fatalf("Ошибка при создании репозитория событий статистики: %v", err)
	}

	// запускаем сервисы usecase (бизнес-логика)
	statsClient := service.NewStatsClient(statsServiceURL)
	userUseCase := service.NewUser(userRepo)
	eventUseCase := service.NewEvent(eventRepo, userRepo, statsClient)
	commentUseCase := service.NewComment(commentRepo, eventRepo, userRepo)
	hitUseCase := service.NewHit(hitEventRepo)

	// запускаем сервисы delivery (обработка запросов)
	cookieManager := utils.NewCookieManager(false)
	authManager := utils.NewAuthManager([]byte(jwtSecret), userRepo, time.Hour*24*365)
	userDelivery := delivery.NewUser(userUseCase, authManager, cookieManager)
	eventDelivery := delivery.NewEvent(eventUseCase, userUseCase, hitUseCase, authManager)
	commentDelivery := delivery.NewComment(commentUseCase, userUseCase, authManager)

	// REST API
	echoServer := echo.New()

	// Не более 10 МБ
	echoServer.Use(middleware.BodyLimit("10M"))
	// gzip на прием
	echoServer.Use(middleware.Decompress())
	// gzip на отдачу
	echoServer.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	// request id
	echoServer.Use(middleware.RequestID())
	// метрики
	m := metrics.New()
	echoServer.Use(metrics.Middleware(m))

	// CORS
	echoServer.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "localhost:3000")
			ctx.Response().Header().Set(echo.HeaderAccessControlAllowMethods, strings.Join([]string{
				http.MethodGet,
				http.MethodPut,
				http.MethodPost,
				http.MethodDelete,
				http.MethodOptions,
			}, ","))
			ctx.Response().Header().Set(echo.HeaderAccessControlAllowHeaders, strings.Join([]string{
				echo.HeaderOrigin,
				echo.HeaderAccept,
				echo.HeaderXRequestedWith,
				echo.HeaderContentType,
				echo.HeaderAccessControlRequestMethod,
				echo.HeaderAccessControlRequestHeaders,
				echo.HeaderCookie,
				"X-Csrf",
			}, ","))
			ctx.Response().Header().Set(echo.HeaderAccessControlAllowCredentials, "true")
			ctx.Response().Header().Set(echo.HeaderAccessControlMaxAge, "86400")
			return next(ctx)
		}
	})

	// Endpoints
	echoServer.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	api := echoServer.Group("/api")
	// users
	users := api.Group("/user")
	userDelivery.Configure(users)
	// events
	events := api.Group("/event")
	eventDelivery.Configure(events)
	// comments
	comments := api.Group("/comment")
	commentDelivery.Configure(comments)
	// admin
	admin := api.Group("/admin")
	adminUsers := admin.Group("/user")
	userDelivery.ConfigureAdmin(adminUsers)
	adminEvents := admin.Group("/event")
	eventDelivery.ConfigureAdmin(adminEvents)
	adminComments := admin.Group("/comment")
	commentDelivery.ConfigureAdmin(adminComments)

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
