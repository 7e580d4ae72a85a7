//go:build unit

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLink struct {
	closed     bool
	publishErr error
	published  []amqp.Publishing
	keys       []string
	closeCalls int
}

func (f *fakeLink) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeLink) IsClosed() bool { return f.closed }

func (f *fakeLink) Close() error {
	f.closeCalls++
	f.closed = true
	return nil
}

// scriptedDialer hands out links in order and counts dials.
type scriptedDialer struct {
	links []*fakeLink
	errs  []error
	calls int
}

func (d *scriptedDialer) dial() (brokerLink, error) {
	i := d.calls
	d.calls++
	if i < len(d.errs) && d.errs[i] != nil {
		return nil, d.errs[i]
	}
	return d.links[i], nil
}

func TestAMQPNotifier_Notify(t *testing.T) {
	userID := uuid.New()
	payload := map[string]any{"leaseId": "l-1"}

	testCases := []struct {
		name      string
		dialer    func() *scriptedDialer
		before    func(d *scriptedDialer)
		wantErr   bool
		wantDials int
		publishOn int
	}{
		{
			name: "open link is reused",
			dialer: func() *scriptedDialer {
				return &scriptedDialer{links: []*fakeLink{{}}}
			},
			wantDials: 1,
			publishOn: 0,
		},
		{
			name: "link closed by the broker is redialed",
			dialer: func() *scriptedDialer {
				return &scriptedDialer{links: []*fakeLink{{}, {}}}
			},
			before:    func(d *scriptedDialer) { d.links[0].closed = true },
			wantDials: 2,
			publishOn: 1,
		},
		{
			name: "publish on a channel closed mid-flight is retried once",
			dialer: func() *scriptedDialer {
				return &scriptedDialer{links: []*fakeLink{{publishErr: amqp.ErrClosed}, {}}}
			},
			wantDials: 2,
			publishOn: 1,
		},
		{
			name: "broker still down is an error",
			dialer: func() *scriptedDialer {
				return &scriptedDialer{
					links: []*fakeLink{{}, nil},
					errs:  []error{nil, errors.New("dial tcp: connection refused")},
				}
			},
			before:    func(d *scriptedDialer) { d.links[0].closed = true },
			wantErr:   true,
			wantDials: 2,
			publishOn: -1,
		},
		{
			name: "other publish errors are not retried",
			dialer: func() *scriptedDialer {
				return &scriptedDialer{links: []*fakeLink{{publishErr: errors.New("frame too large")}}}
			},
			wantErr:   true,
			wantDials: 1,
			publishOn: -1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.dialer()
			n, err := newAMQPNotifier("lease.events", d.dial)
			require.NoError(t, err)
			n.now = func() time.Time { return time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC) }
			if tc.before != nil {
				tc.before(d)
			}

			err = n.Notify(context.Background(), userID, "lease.created", payload)

			assert.Equal(t, tc.wantDials, d.calls)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "publish lease.created")
				return
			}
			require.NoError(t, err)

			link := d.links[tc.publishOn]
			require.Len(t, link.published, 1)
			assert.Equal(t, []string{"lease.created"}, link.keys)
			assert.Equal(t, amqp.Persistent, link.published[0].DeliveryMode)

			var msg Message
			require.NoError(t, json.Unmarshal(link.published[0].Body, &msg))
			assert.Equal(t, userID, msg.UserID)
			assert.Equal(t, "lease.created", msg.Event)
			assert.Equal(t, "l-1", msg.Data["leaseId"])

			if tc.publishOn > 0 {
				assert.Equal(t, 1, d.links[0].closeCalls, "dead link is released")
			}
		})
	}
}

func TestAMQPNotifier_StartupDialFailure(t *testing.T) {
	d := &scriptedDialer{errs: []error{errors.New("dial tcp: connection refused")}}

	n, err := newAMQPNotifier("lease.events", d.dial)
	require.Error(t, err)
	assert.Nil(t, n)
}

func TestAMQPNotifier_Close(t *testing.T) {
	d := &scriptedDialer{links: []*fakeLink{{}}}
	n, err := newAMQPNotifier("lease.events", d.dial)
	require.NoError(t, err)

	require.NoError(t, n.Close())
	require.NoError(t, n.Close())
	assert.Equal(t, 1, d.links[0].closeCalls)
}
