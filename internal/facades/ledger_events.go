package facades

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/segmentio/kafka-go"
)

const (
	publishQueueSize = 1024
	publishBatchSize = 100
	publishTimeout   = 5 * time.Second
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerEventsKafkaFacade publishes ledger events to Kafka from a single background sender.
// Messages are keyed by wallet id and sent in Publish order, so the events of one wallet
// stay ordered within a partition.
type LedgerEventsKafkaFacade struct {
	writer KafkaWriter

	mu     sync.RWMutex
	closed bool
	queue  chan kafka.Message
	done   chan struct{}
}

// NewLedgerEventsKafkaFacade creates a new facade and starts its sender. A nil writer disables publishing.
func NewLedgerEventsKafkaFacade(writer KafkaWriter) *LedgerEventsKafkaFacade {
	f := &LedgerEventsKafkaFacade{writer: writer}
	if writer != nil {
		f.queue = make(chan kafka.Message, publishQueueSize)
		f.done = make(chan struct{})
		go f.send()
	}
	return f
}

// Publish queues event for sending and returns without waiting for the broker.
// Failures, including a full queue, are logged and never returned.
func (f *LedgerEventsKafkaFacade) Publish(ctx context.Context, event models.LedgerEvent) {
	if f == nil || f.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", event.TransactionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal ledger event", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.WalletID, 10)),
		Value: data,
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		logger.Log.Warnw("ledger event publisher closed, dropping event", "transaction_id", event.TransactionID)
		return
	}

	select {
	case f.queue <- msg:
		logger.Log.Debugw("ledger event queued",
			"transaction_id", event.TransactionID,
			"wallet_id", event.WalletID,
			"type", event.Type,
			"amount", event.Amount,
		)
	default:
		logger.Log.Errorw("ledger event queue full, dropping event",
			"transaction_id", event.TransactionID, "wallet_id", event.WalletID)
	}
}

// send writes queued messages in batches until the queue is closed and drained.
func (f *LedgerEventsKafkaFacade) send() {
	defer close(f.done)

	for msg := range f.queue {
		batch := []kafka.Message{msg}

	fill:
		for len(batch) < publishBatchSize {
			select {
			case next, ok := <-f.queue:
				if !ok {
					break fill
				}
				batch = append(batch, next)
			default:
				break fill
			}
		}

		f.write(batch)
	}
}

func (f *LedgerEventsKafkaFacade) write(batch []kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := f.writer.WriteMessages(ctx, batch...); err != nil {
		logger.Log.Errorw("failed to publish ledger events", "count", len(batch), "error", err)
		return
	}
	logger.Log.Infow("ledger events published", "count", len(batch))
}

// Close stops accepting events, waits for the queued ones to be sent and closes the writer.
func (f *LedgerEventsKafkaFacade) Close() error {
	if f == nil || f.writer == nil {
		return nil
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	close(f.queue)
	f.mu.Unlock()

	<-f.done
	return f.writer.Close()
}
