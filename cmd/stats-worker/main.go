package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"eventic-backend/internal/repo/cockroach"
	"eventic-backend/internal/repo/kafka"
	"eventic-backend/internal/usecase/service"
	"eventic-backend/pkg/connector"
	"eventic-backend/pkg/goosehelper"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func init() {
	// Загружаем переменные окружения
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
	kafkaBrokersStr := os.Getenv("KAFKA_BROKERS")
	workerID := os.Getenv("STATS_WORKER_ID")

	if dbConnectDSN == "" {
		log.Fatal("DB_CONNECT_DSN переменная окружения обязательна")
	}
	if kafkaBrokersStr == "" {
		log.Fatal("KAFKA_BROKERS переменная окружения обязательна")
	}
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")

	if workerID == "" {
		hostname, err := os.Hostname()
		if err != nil {
			workerID = fmt.Sprintf("stats-worker-%d", time.Now().Unix())
		} else {
			workerID = fmt.Sprintf("stats-worker-%s-%d", hostname, time.Now().Unix())
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

	// Инициализация репозиториев
	statsRepo := cockroach.NewStats(dbConn)
	// Все воркеры используют одну группу, чтобы делить партиции между собой
	hitEventRepo, err := kafka.NewHitEventKafkaRepository(kafkaBrokers, "stats-worker")
	if err != nil {
		log.Fatalf("Ошибка при создании репозитория событий статистики: %v", err)
	}

	// Создание и запуск воркера
	statsWorker := service.NewHitWorker(hitEventRepo, statsRepo, workerID)
	if err := statsWorker.Start(ctx); err != nil {
		log.Fatalf("Ошибка в работе воркера статистики: %v", err)
	}
}
