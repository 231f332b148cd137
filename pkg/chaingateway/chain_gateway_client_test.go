package chaingateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vaultcraft/internal/domain"
	"vaultcraft/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestClient_SwapExactInputSingle(t *testing.T) {
	ctx := context.Background()

	t.Run("parses the swap output", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/exchange/swapExactInputSingle", r.URL.Path)
			require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Write([]byte(`{"amountOut": "248"}`))
		}))
		defer server.Close()

		client := NewClient(server.Client(), server.URL, "test-key")
		out, err := client.SwapExactInputSingle(ctx, repository.SwapExactInputSingleRequest{
			Owner:        "vault:abc",
			TokenIn:      "USDC",
			TokenOut:     "WETH",
			AmountIn:     decimal.NewFromInt(500),
			MinAmountOut: decimal.NewFromInt(247),
		})
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(248)))
	})

	t.Run("maps gateway error codes onto sentinel errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(422)
			w.Write([]byte(`{"error": "output below bound", "code": "SLIPPAGE_EXCEEDED"}`))
		}))
		defer server.Close()

		client := NewClient(server.Client(), server.URL, "test-key")
		_, err := client.SwapExactInputSingle(ctx, repository.SwapExactInputSingleRequest{})
		require.ErrorIs(t, err, domain.ErrSlippageExceeded)
	})
}

func TestClient_TransferFrom(t *testing.T) {
	ctx := context.Background()

	t.Run("maps an allowance failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(402)
			w.Write([]byte(`{"error": "allowance too low", "code": "INSUFFICIENT_ALLOWANCE"}`))
		}))
		defer server.Close()

		client := NewClient(server.Client(), server.URL, "test-key")
		err := client.TransferFrom(ctx, "USDC", "alice", "vault:abc", decimal.NewFromInt(100))
		require.ErrorIs(t, err, domain.ErrInsufficientAllowance)
	})
}

func TestClient_IsEligible(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/gate/eligibility", r.URL.Path)
		w.Write([]byte(`{"eligible": true}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "test-key")
	eligible, err := client.IsEligible(ctx, "alice", []string{"0xdeadbeef"})
	require.NoError(t, err)
	require.True(t, eligible)
}
