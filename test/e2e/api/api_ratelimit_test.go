package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindling-app/kindling/pkg/kindlingsdk"
)

// TestE2ELoginRateLimit verifies the strict per-IP limit on credential
// endpoints with production defaults (10 requests per minute).
func TestE2ELoginRateLimit(t *testing.T) {
	baseURL, cleanup := setupAPIContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := kindlingsdk.NewClient(baseURL)
	ctx := context.Background()

	limited := false
	for i := 0; i < 30 && !limited; i++ {
		_, err := client.Login(ctx, kindlingsdk.LoginRequest{
			Email:    "nobody@kindling.example",
			Password: "whatever",
		})
		require.Error(t, err)

		var apiErr *kindlingsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		if apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
		}
	}

	require.True(t, limited, "strict limit should trip within 30 rapid login attempts")
}
