package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/fixhub/repairshop/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishRepairStatusChanged publishes a repair status transition with
// tracing. A nil publisher is a no-op so event publishing stays optional.
func (p *Publisher) PublishRepairStatusChanged(ctx context.Context, event RepairStatusChangedEvent) error {
	if p == nil {
		return nil
	}

	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.repair_status_changed",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicRepairStatusChanged),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", EventTypeRepairStatusChanged),
			attribute.Int64("repair.id", int64(event.RepairID)),
			attribute.String("repair.previous_status", event.PreviousStatus),
			attribute.String("repair.new_status", event.NewStatus),
		),
	)
	defer span.End()

	event.EventType = EventTypeRepairStatusChanged
	key := fmt.Sprintf("repair_%d", event.RepairID)

	partition, offset, err := p.publish(ctx, span, TopicRepairStatusChanged, key, &event.EventID, &event.Timestamp, &event)
	if err != nil {
		logger.Logger.Error().
			Err(err).
			Str("topic", TopicRepairStatusChanged).
			Uint("repair_id", event.RepairID).
			Str("trace_id", span.SpanContext().TraceID().String()).
			Msg("Failed to publish event")
		return err
	}

	logger.Logger.Info().
		Str("event_id", event.EventID).
		Str("event_type", event.EventType).
		Str("topic", TopicRepairStatusChanged).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("repair_id", event.RepairID).
		Str("previous_status", event.PreviousStatus).
		Str("new_status", event.NewStatus).
		Str("trace_id", span.SpanContext().TraceID().String()).
		Msg("Repair status changed event published")

	return nil
}

// PublishItemRequested publishes an item requested event with tracing.
// A nil publisher is a no-op.
func (p *Publisher) PublishItemRequested(ctx context.Context, event ItemRequestedEvent) error {
	if p == nil {
		return nil
	}

	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.item_requested",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicItemRequested),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", EventTypeItemRequested),
			attribute.Int64("item.id", int64(event.ItemID)),
			attribute.Int64("item.variant_id", int64(event.ProductVariantID)),
			attribute.Int("item.quantity", event.Quantity),
		),
	)
	defer span.End()

	event.EventType = EventTypeItemRequested
	key := fmt.Sprintf("item_%d", event.ItemID)

	partition, offset, err := p.publish(ctx, span, TopicItemRequested, key, &event.EventID, &event.Timestamp, &event)
	if err != nil {
		logger.Logger.Error().
			Err(err).
			Str("topic", TopicItemRequested).
			Uint("item_id", event.ItemID).
			Str("trace_id", span.SpanContext().TraceID().String()).
			Msg("Failed to publish event")
		return err
	}

	logger.Logger.Info().
		Str("event_id", event.EventID).
		Str("event_type", event.EventType).
		Str("topic", TopicItemRequested).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("item_id", event.ItemID).
		Str("trace_id", span.SpanContext().TraceID().String()).
		Msg("Item requested event published")

	return nil
}

// publish stamps event metadata, injects the trace context into Kafka
// headers and sends the message.
func (p *Publisher) publish(ctx context.Context, span trace.Span, topic, key string, eventID *string, timestamp *time.Time, event interface{}) (int32, int64, error) {
	if *eventID == "" {
		*eventID = uuid.New().String()
	}
	*timestamp = time.Now()

	span.SetAttributes(attribute.String("event.id", *eventID))

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return 0, 0, fmt.Errorf("failed to marshal event: %w", err)
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(*eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		return 0, 0, fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	return partition, offset, nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
