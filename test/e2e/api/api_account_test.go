package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindling-app/kindling/pkg/kindlingsdk"
)

func TestE2ERegisterAndLogin(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := kindlingsdk.NewClient(baseURL)
	ctx := context.Background()

	registered := registerAccount(t, client, "alice@kindling.example", "Alice", "Sup3rSecret")
	require.Equal(t, "alice@kindling.example", registered.User.Email)
	require.Equal(t, "Alice", registered.User.DisplayName)
	require.False(t, registered.User.CreatedAt.IsZero())

	// Login with an upper-case variant of the registered email.
	loggedIn, err := client.Login(ctx, kindlingsdk.LoginRequest{
		Email:    "ALICE@Kindling.Example",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, loggedIn.User.ID)
	require.NotEmpty(t, loggedIn.Token)
}

func TestE2EDuplicateRegistration(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := kindlingsdk.NewClient(baseURL)
	ctx := context.Background()

	registerAccount(t, client, "bob@kindling.example", "Bob", "pw123456")

	_, err := client.Register(ctx, kindlingsdk.RegisterRequest{
		Email:       "BOB@KINDLING.EXAMPLE",
		DisplayName: "Impostor",
		Password:    "different",
	})
	require.Error(t, err)

	var apiErr *kindlingsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, kindlingsdk.ErrorCodeDuplicateEmail, apiErr.Code)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestE2ELoginFailuresAreUniform(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := kindlingsdk.NewClient(baseURL)
	ctx := context.Background()

	registerAccount(t, client, "carol@kindling.example", "Carol", "RightPassword")

	_, wrongPassword := client.Login(ctx, kindlingsdk.LoginRequest{
		Email:    "carol@kindling.example",
		Password: "WrongPassword",
	})
	_, unknownEmail := client.Login(ctx, kindlingsdk.LoginRequest{
		Email:    "nobody@kindling.example",
		Password: "WrongPassword",
	})

	var a, b *kindlingsdk.APIError
	require.ErrorAs(t, wrongPassword, &a)
	require.ErrorAs(t, unknownEmail, &b)
	require.Equal(t, a.Code, b.Code)
	require.Equal(t, a.Description, b.Description)
	require.Equal(t, http.StatusUnauthorized, a.StatusCode)
}

func TestE2ERegistrationValidation(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := kindlingsdk.NewClient(baseURL)
	ctx := context.Background()

	_, err := client.Register(ctx, kindlingsdk.RegisterRequest{
		Email: "dave@kindling.example",
	})
	require.Error(t, err)

	var validation *kindlingsdk.ValidationError
	require.True(t, errors.As(err, &validation))
	require.Contains(t, validation.Details, "display_name")
	require.Contains(t, validation.Details, "password")
}
