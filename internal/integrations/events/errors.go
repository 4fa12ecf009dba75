package events

import "errors"

var (
	// ErrProducerClosed возвращается при публикации в закрытый продюсер
	ErrProducerClosed = errors.New("events producer: closed")

	// ErrInvalidConfig возвращается при некорректной конфигурации продюсера
	ErrInvalidConfig = errors.New("events producer: invalid config")

	// ErrPublish возвращается при ошибке записи в Kafka
	ErrPublish = errors.New("events producer: failed to publish")
)
