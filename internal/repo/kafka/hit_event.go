package kafka

import (
	"context"
	"errors"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/vmihailenco/msgpack/v5"

	"net"
	"strconv"
)

const (
	hitTopicName  = "endpoint-hits"
	NumPartitions = 3
)

// TopicConfig содержит настройки для создания топика
type TopicConfig struct {
	NumPartitions     int
	ReplicationFactor int
}

type HitEventKafkaRepository struct {
	writer        *kafka.Writer
	readerFactory func() *kafka.Reader
	brokers       []string
	topicConfig   TopicConfig
}

// createTopicIfNotExists создает топик, если он не существует
func createTopicIfNotExists(ctx context.Context, brokers []string, topic string, config TopicConfig) error {
	// Подключаемся к любому из брокеров
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	// Проверяем, существует ли уже топик
	topicExists, err := checkIfTopicExists(conn, topic)
	if err != nil {
		return err
	}

	// Если топик существует, возвращаем успешный результат
	if topicExists {
		return nil
	}

	// Создаем топик
	controller, err := conn.Controller()
	if err != nil {
		return err
	}

	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer func() { _ = controllerConn.Close() }()

	return controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     config.NumPartitions,
		ReplicationFactor: config.ReplicationFactor,
	})
}

// checkIfTopicExists проверяет, существует ли топик
func checkIfTopicExists(conn *kafka.Conn, topic string) (bool, error) {
	partitions, err := conn.ReadPartitions(topic)
	if err != nil {
		if errors.Is(err, kafka.UnknownTopicOrPartition) {
			return false, nil
		}
		return false, err
	}
	return len(partitions) > 0, nil
}

// getMaxReplicationFactor определяет максимально возможный фактор репликации
// на основе количества доступных брокеров
func getMaxReplicationFactor(ctx context.Context, brokers []string, desiredFactor int) (int, error) {
	// Базовая проверка
	if len(brokers) == 0 {
		return 1, errors.New("пустой список брокеров")
	}

	// Подключаемся к любому из брокеров с явным таймаутом
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := kafka.DialContext(dialCtx, "tcp", brokers[0])
	if err != nil {
		// В случае ошибки подключения используем длину списка брокеров
		// как консервативную оценку
		actualFactor := min(len(brokers), desiredFactor)
		return actualFactor, fmt.Errorf("не удалось подключиться к брокеру для получения метаданных, используем безопасное значение %d: %w", actualFactor, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	// Устанавливаем таймаут операции чтения метаданных
	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		actualFactor := min(len(brokers), desiredFactor)
		return actualFactor, fmt.Errorf("ошибка установки таймаута чтения: %w", err)
	}

	// Пробуем получить информацию о всех брокерах
	brokerMetadata, err := conn.Brokers()
	if err != nil {
		actualFactor := min(len(brokers), desiredFactor)
		return actualFactor, fmt.Errorf("ошибка получения метаданных о брокерах, используем безопасное значение %d: %w", actualFactor, err)
	}

	// Количество доступных брокеров
	availableBrokers := len(brokerMetadata)
	if availableBrokers == 0 {
		// Если по какой-то причине метаданные пусты, используем предоставленный список
		actualFactor := min(len(brokers), desiredFactor)
		return actualFactor, fmt.Errorf("получен пустой список брокеров из метаданных, используем безопасное значение %d", actualFactor)
	}

	// Не можем реплицировать больше, чем у нас есть брокеров
	return min(availableBrokers, desiredFactor), nil
}

// NewHitEventKafkaRepository создает репозиторий событий просмотров поверх Kafka.
// groupID задает группу потребителей: воркеры с одной группой делят поток между собой.
func NewHitEventKafkaRepository(brokers []string, groupID string) (repo.HitEventRepository, error) {
	// Проверка подключения к Kafka
	if len(brokers) == 0 {
		return nil, errors.New("не предоставлены брокеры Kafka")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Желаемые значения для конфигурации топиков
	desiredReplicationFactor := 3 // В идеале хотим 3 для надежности

	// Определяем реально возможный фактор репликации
	actualReplicationFactor, err := getMaxReplicationFactor(ctx, brokers, desiredReplicationFactor)
	if err != nil {
		return nil, fmt.Errorf("ошибка при определении фактора репликации: %w", err)
	}

	topicConfig := TopicConfig{
		NumPartitions:     NumPartitions,
		ReplicationFactor: actualReplicationFactor,
	}

	// Создаем топик просмотров, если он не существует
	if err := createTopicIfNotExists(ctx, brokers, hitTopicName, topicConfig); err != nil {
		return nil, fmt.Errorf("ошибка при создании топика просмотров: %w", err)
	}
	return &HitEventKafkaRepository{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    hitTopicName,
			Balancer: &kafka.LeastBytes{},
		},
		readerFactory: func() *kafka.Reader {
			// Читаем с самого начала: пропущенные за время простоя события
			// должны быть сохранены, дубликаты отсекаются по hit_id
			return kafka.NewReader(kafka.ReaderConfig{
				Brokers:     brokers,
				Topic:       hitTopicName,
				GroupID:     groupID,
				MinBytes:    1,
				MaxBytes:    10e6,
				StartOffset: kafka.FirstOffset,
			})
		},
		brokers:     brokers,
		topicConfig: topicConfig,
	}, nil
}

func (r *HitEventKafkaRepository) PublishHit(ctx context.Context, hit *entity.EndpointHit) error {
	// сериализация события
	b, err := msgpack.Marshal(hit)
	if err != nil {
		return err
	}

	return r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(hit.URI),
		Value: b,
	})
}

func (r *HitEventKafkaRepository) SubscribeHits(ctx context.Context) (<-chan *entity.EndpointHit, error) {
	reader := r.readerFactory()
	ch := make(chan *entity.EndpointHit)
	go func() {
		defer close(ch)
		defer func() { _ = reader.Close() }()
		for {
			m, err := reader.ReadMessage(ctx)
			if err != nil {
				return
			}
			var hit entity.EndpointHit
			if err := msgpack.Unmarshal(m.Value, &hit); err == nil {
				ch <- &hit
			}
		}
	}()
	return ch, nil
}
