package queue

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// Message pairs a decoded persistence Job with the delivery it rode in
// on, so the worker can ack or dead-letter it.
type Message struct {
	Job         *Job
	DeliveryTag uint64
	Channel     *amqp.Channel
}

// Ack acknowledges the delivery, removing it from the queue.
func (m *Message) Ack() error {
	return m.Channel.Ack(m.DeliveryTag, false)
}

// Nack rejects the delivery. With requeue false the broker
// dead-letters it to the DLQ.
func (m *Message) Nack(requeue bool) error {
	return m.Channel.Nack(m.DeliveryTag, false, requeue)
}

// GetJob returns the wrapped job.
func (m *Message) GetJob() *Job {
	return m.Job
}
