//go:build unit

package gateway_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"furnished-lease-engine/internal/infra/gateway"
	"furnished-lease-engine/internal/usecase/commands"

	"github.com/omise/omise-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRetriever struct {
	charge *omise.Charge
	err    error
	gotRef string
}

func (s *stubRetriever) RetrieveCharge(_ context.Context, chargeID string) (*omise.Charge, error) {
	s.gotRef = chargeID
	return s.charge, s.err
}

func charge(status string, amount int64) *omise.Charge {
	ch := &omise.Charge{
		Status:   omise.ChargeStatus(status),
		Amount:   amount,
		Currency: "EUR",
	}
	ch.ID = "chrg_test_5xq2"
	return ch
}

func strPtr(s string) *string { return &s }

func TestOmiseGateway_LookupTransactionStatus(t *testing.T) {
	tagged := charge("successful", 100000)
	tagged.Metadata = map[string]interface{}{gateway.MetadataReservationKey: " 0b0f7a2e-9a51-4b7e-8c1d-3f4e5a6b7c8d "}
	wrongType := charge("successful", 100000)
	wrongType.Metadata = map[string]interface{}{gateway.MetadataReservationKey: 42}

	declined := charge("failed", 100000)
	declined.FailureCode = strPtr("insufficient_fund")
	declined.FailureMessage = strPtr("insufficient funds in the account")

	testCases := []struct {
		name      string
		retriever *stubRetriever
		want      *commands.GatewayResult
		wantErr   bool
		errIs     error
	}{
		{
			name:      "successful charge",
			retriever: &stubRetriever{charge: charge("successful", 100000)},
			want:      &commands.GatewayResult{Status: commands.GatewaySuccessful, Amount: 100000, Currency: "eur"},
		},
		{
			name:      "reservation tag is read from charge metadata",
			retriever: &stubRetriever{charge: tagged},
			want: &commands.GatewayResult{
				Status:        commands.GatewaySuccessful,
				Amount:        100000,
				Currency:      "eur",
				ReservationID: "0b0f7a2e-9a51-4b7e-8c1d-3f4e5a6b7c8d",
			},
		},
		{
			name:      "non-string reservation tag is ignored",
			retriever: &stubRetriever{charge: wrongType},
			want:      &commands.GatewayResult{Status: commands.GatewaySuccessful, Amount: 100000, Currency: "eur"},
		},
		{
			name:      "declined charge carries the failure code",
			retriever: &stubRetriever{charge: declined},
			want: &commands.GatewayResult{
				Status:        commands.GatewayFailed,
				Amount:        100000,
				Currency:      "eur",
				FailureReason: "insufficient_fund: insufficient funds in the account",
			},
		},
		{
			name:      "expired charge without failure code",
			retriever: &stubRetriever{charge: charge("expired", 100000)},
			want: &commands.GatewayResult{
				Status:        commands.GatewayFailed,
				Amount:        100000,
				Currency:      "eur",
				FailureReason: "expired",
			},
		},
		{
			name:      "pending charge",
			retriever: &stubRetriever{charge: charge("pending", 100000)},
			want:      &commands.GatewayResult{Status: commands.GatewayPending},
		},
		{
			name:      "unknown status is malformed",
			retriever: &stubRetriever{charge: charge("teleported", 1)},
			wantErr:   true,
			errIs:     gateway.ErrMalformedResponse,
		},
		{
			name:      "empty charge is malformed",
			retriever: &stubRetriever{charge: &omise.Charge{}},
			wantErr:   true,
			errIs:     gateway.ErrMalformedResponse,
		},
		{
			name: "unknown reference is a definitive failure",
			retriever: &stubRetriever{err: &omise.Error{
				StatusCode: http.StatusNotFound,
				Code:       "not_found",
				Message:    "charge chrg_test_5xq2 was not found",
			}},
			want: &commands.GatewayResult{Status: commands.GatewayFailed, FailureReason: "gateway: not_found"},
		},
		{
			name: "rejected credentials stay transient",
			retriever: &stubRetriever{err: &omise.Error{
				StatusCode: http.StatusUnauthorized,
				Code:       "authentication_failure",
			}},
			wantErr: true,
		},
		{
			name: "forbidden account stays transient",
			retriever: &stubRetriever{err: &omise.Error{
				StatusCode: http.StatusForbidden,
				Code:       "forbidden",
			}},
			wantErr: true,
		},
		{
			name: "rate limiting stays transient",
			retriever: &stubRetriever{err: &omise.Error{
				StatusCode: http.StatusTooManyRequests,
				Code:       "too_many_requests",
			}},
			wantErr: true,
		},
		{
			name: "provider outage stays transient",
			retriever: &stubRetriever{err: &omise.Error{
				StatusCode: http.StatusBadGateway,
				Code:       "bad_gateway",
			}},
			wantErr: true,
		},
		{
			name:      "network error stays transient",
			retriever: &stubRetriever{err: errors.New("dial tcp: i/o timeout")},
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := gateway.NewOmiseGateway(tc.retriever)

			got, err := g.LookupTransactionStatus(context.Background(), "chrg_test_5xq2")
			assert.Equal(t, "chrg_test_5xq2", tc.retriever.gotRef)

			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewOmiseClient(t *testing.T) {
	t.Run("keys must carry their omise prefixes", func(t *testing.T) {
		_, err := gateway.NewOmiseClient("pk_wrong", "skey_test_1", time.Second)
		require.Error(t, err)
		assert.ErrorIs(t, err, omise.ErrInvalidKey)
	})

	t.Run("timeout is applied to the http client", func(t *testing.T) {
		c, err := gateway.NewOmiseClient("pkey_test_1", "skey_test_1", 3*time.Second)
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, c.Client.Timeout)
		assert.NotNil(t, c.Client.Transport)
	})
}

func TestOmiseGateway_AgainstHTTPServer(t *testing.T) {
	const reservationID = "0b0f7a2e-9a51-4b7e-8c1d-3f4e5a6b7c8d"

	testCases := []struct {
		name    string
		status  int
		body    string
		want    *commands.GatewayResult
		wantErr bool
	}{
		{
			name:   "successful charge",
			status: http.StatusOK,
			body: fmt.Sprintf(`{"object":"charge","id":"chrg_http_1","status":"successful","amount":100000,"currency":"EUR","metadata":{"reservation_id":%q}}`,
				reservationID),
			want: &commands.GatewayResult{
				Status:        commands.GatewaySuccessful,
				Amount:        100000,
				Currency:      "eur",
				ReservationID: reservationID,
			},
		},
		{
			name:   "unknown charge",
			status: http.StatusNotFound,
			body:   `{"object":"error","status":404,"code":"not_found","message":"charge was not found"}`,
			want:   &commands.GatewayResult{Status: commands.GatewayFailed, FailureReason: "gateway: not_found"},
		},
		{
			name:    "bad secret key",
			status:  http.StatusUnauthorized,
			body:    `{"object":"error","status":401,"code":"authentication_failure","message":"authentication failed"}`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			type captured struct{ path, user string }
			seen := make(chan captured, 1)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, _, _ := r.BasicAuth()
				seen <- captured{path: r.URL.Path, user: user}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client, err := gateway.NewOmiseClient("pkey_test_1", "skey_test_1", 2*time.Second)
			require.NoError(t, err)
			client.Endpoints["https://api.omise.co"] = srv.URL

			g := gateway.NewOmiseGateway(gateway.NewOmiseRetriever(client))
			got, err := g.LookupTransactionStatus(context.Background(), "chrg_http_1")

			req := <-seen
			assert.Equal(t, "/charges/chrg_http_1", req.path)
			assert.Equal(t, "skey_test_1", req.user)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
