package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestProducer_Publish(t *testing.T) {
	tests := []struct {
		name        string
		payload     interface{}
		writeErr    error
		expectedErr bool
		expectedLen int
	}{
		{
			name:        "Published",
			payload:     map[string]string{"receipt_id": "RCPT1"},
			expectedLen: 1,
		},
		{
			name:        "Writer failure",
			payload:     map[string]string{"receipt_id": "RCPT1"},
			writeErr:    errors.New("broker down"),
			expectedErr: true,
		},
		{
			name:        "Payload can't be marshalled",
			payload:     make(chan int),
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWriter{err: tt.writeErr}
			p := &Producer{topic: "receipts", writer: w}

			err := p.Publish(context.Background(), "EL12345678", tt.payload)

			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			require.Len(t, w.msgs, tt.expectedLen)
			if tt.expectedLen > 0 {
				assert.Equal(t, "receipts", w.msgs[0].Topic)
				assert.Equal(t, []byte("EL12345678"), w.msgs[0].Key)
				var got map[string]string
				require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
				assert.Equal(t, "RCPT1", got["receipt_id"])
			}
		})
	}
}

func TestProducer_Close(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{topic: "receipts", writer: w}

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestLogPublisher(t *testing.T) {
	p := LogPublisher{Topic: "receipts"}

	assert.NoError(t, p.Publish(context.Background(), "k", map[string]int{"a": 1}))
	assert.Error(t, p.Publish(context.Background(), "k", func() {}))
	assert.NoError(t, p.Close())
}
