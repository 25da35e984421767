package sender

import (
	"context"
	"fmt"

	"github.com/novamart/storefront/internal/notification/domain"
	"github.com/novamart/storefront/pkg/mq"
)

// KafkaSender 把提示消息发布到 Kafka 主题，按用户分区保序
type KafkaSender struct {
	producer *mq.KafkaProducer
	topic    string
}

// NewKafkaSender 创建 Kafka 投递器
func NewKafkaSender(producer *mq.KafkaProducer, topic string) *KafkaSender {
	return &KafkaSender{producer: producer, topic: topic}
}

// Send 发布一条提示消息
func (s *KafkaSender) Send(ctx context.Context, toast *domain.Toast) error {
	if err := s.producer.SendMessage(ctx, s.topic, toast.UserID, toast); err != nil {
		return fmt.Errorf("failed to publish toast: %w", err)
	}
	return nil
}
