package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/gymdesk/internal/telemetry/metrics"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes plan change events to a single topic, keyed by member id
// so one member's changes stay ordered within a partition.
type KafkaPublisher struct {
	writer         messageWriter
	topic          string
	metricsManager *metrics.Manager
}

func NewKafkaPublisher(brokers []string, topic string, metricsManager *metrics.Manager) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	return newKafkaPublisher(writer, topic, metricsManager)
}

func newKafkaPublisher(writer messageWriter, topic string, metricsManager *metrics.Manager) *KafkaPublisher {
	return &KafkaPublisher{
		writer:         writer,
		topic:          topic,
		metricsManager: metricsManager,
	}
}

func (p *KafkaPublisher) PublishPlanChanged(ctx context.Context, event PlanChanged) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "events.publishPlanChanged")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		p.countPublished(err)
	}()
	span.SetAttributes(attribute.String("topic", p.topic))
	span.SetAttributes(attribute.String("plan_id", event.PlanID))
	span.SetAttributes(attribute.String("op", string(event.Op)))

	if event.Type == "" {
		event.Type = TypePlanChanged
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.MemberID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}); err != nil {
		return fmt.Errorf("write message: %w", err)
	}

	log.Tracef("published %s for plan %s", event.Op, event.PlanID)
	return nil
}

func (p *KafkaPublisher) countPublished(err error) {
	if p.metricsManager == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.metricsManager.CounterPlanEventsPublished.WithLabelValues(result).Inc()
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishPlanChanged(context.Context, PlanChanged) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
