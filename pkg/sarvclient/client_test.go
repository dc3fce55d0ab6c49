package sarvclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvclient"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &sarvcrm.Config{
			BaseURL: "https://app.sarvcrm.com/API.php",
		}

		client, err := sarvclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := sarvclient.New(nil)
		require.ErrorIs(t, err, sarvcrm.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing base URL", func(t *testing.T) {
		t.Parallel()

		client, err := sarvclient.New(&sarvcrm.Config{})
		require.ErrorIs(t, err, sarvcrm.ErrBaseURLRequired)
		assert.Nil(t, client)
	})

	t.Run("adds https scheme when missing", func(t *testing.T) {
		t.Parallel()

		config := &sarvcrm.Config{BaseURL: "app.sarvcrm.com/API.php"}

		client, err := sarvclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://app.sarvcrm.com/API.php", config.BaseURL)
	})

	t.Run("trims trailing slash", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/API.php", request.URL.Path)
			_, _ = writer.Write([]byte(`{"data": []}`))
		}))
		defer server.Close()

		client, err := sarvclient.NewWithToken(server.URL+"/API.php/", "tok")
		require.NoError(t, err)

		_, err = client.Contacts().List(context.Background(), nil)
		require.NoError(t, err)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
		_, _ = writer.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client, err := sarvclient.NewWithToken(server.URL, "test-token")
	require.NoError(t, err)
	assert.Equal(t, "test-token", client.Token())

	_, err = client.Leads().List(context.Background(), nil)
	require.NoError(t, err)
}

func TestNewWithPassword(t *testing.T) {
	t.Parallel()

	client, err := sarvclient.NewWithPassword("https://app.sarvcrm.com/API.php", "corporate", "admin", "secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Empty(t, client.Token())
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Query().Get("method") {
		case "Login":
			_, _ = writer.Write([]byte(`{"data": {"token": "session-token"}}`))
		case "Retrieve":
			assert.Equal(t, "Bearer session-token", request.Header.Get("Authorization"))
			_, _ = writer.Write([]byte(`{"data": [{"id": "1", "name": "Acme"}]}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := sarvclient.NewWithPassword(server.URL, "corporate", "admin", "secret")
	require.NoError(t, err)

	ctx := context.Background()

	token, err := client.Login(ctx)
	require.NoError(t, err)
	assert.Equal(t, "session-token", token)

	accounts, err := client.Accounts().List(ctx, &sarvcrm.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Acme", accounts[0]["name"])

	client.Logout()
	assert.Empty(t, client.Token())
	require.NoError(t, client.Close())
}
