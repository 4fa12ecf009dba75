package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Producer публикует события бронирований в Kafka
// Ключ сообщения - ID бронирования, события одного бронирования попадают в одну партицию
type Producer struct {
	writer *kafka.Writer
	log    Logger
	closed bool
	mu     sync.RWMutex
}

// NewProducer создает продюсер событий
func NewProducer(brokers []string, topic string, log Logger) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("%w: at least one broker is required", ErrInvalidConfig)
	}
	if topic == "" {
		return nil, fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		MaxAttempts:  1,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger:  kafka.LoggerFunc(log.Error),
	}

	return &Producer{writer: writer, log: log}, nil
}

// Publish публикует событие
func (p *Producer) Publish(ctx context.Context, event BookingEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrProducerClosed
	}

	msg, err := buildMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s booking_id=%d: %v", ErrPublish, event.Type, event.BookingID, err)
	}

	p.log.Info("Events: published %s booking_id=%d", event.Type, event.BookingID)
	return nil
}

// Close закрывает продюсер
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.writer.Close()
}

func buildMessage(event BookingEvent) (kafka.Message, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	// Инциденты без бронирования партиционируются по автомобилю
	key := "booking:" + strconv.FormatInt(event.BookingID, 10)
	if event.BookingID == 0 {
		key = "vehicle:" + strconv.FormatInt(event.VehicleID, 10)
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}, nil
}

// NopPublisher публикатор-заглушка, используется когда события отключены
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(context.Context, BookingEvent) error { return nil }

// Close ничего не делает
func (NopPublisher) Close() error { return nil }
