package assets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"biletado/config"
	"biletado/infras/assets"
	"biletado/infras/otel/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) assets.Assets {
	cfg := &config.Config{}
	cfg.External.Assets.BaseURL = baseURL
	cfg.External.Assets.RoomPath = "/api/v3/assets/rooms"
	cfg.External.Assets.ReadyPath = "/api/v3/assets/health/ready"
	cfg.External.Assets.TimeoutSeconds = 1

	return assets.New(cfg, mocks.NewOtel())
}

func TestAssetsRoomExists(t *testing.T) {
	roomID := uuid.New()

	type testCase struct {
		name       string
		handler    http.HandlerFunc
		wantExists bool
		wantErr    bool
	}

	cases := []testCase{
		{
			name: "active room exists",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v3/assets/rooms/"+roomID.String(), r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"` + roomID.String() + `","deleted_at":null}`))
			},
			wantExists: true,
		},
		{
			name: "deleted room does not exist",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"` + roomID.String() + `","deleted_at":"2026-01-05T10:00:00Z"}`))
			},
			wantExists: false,
		},
		{
			name: "unknown room does not exist",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantExists: false,
		},
		{
			name: "unparseable payload treated as invalid",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			wantExists: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := newClient(server.URL)

			exists, err := client.RoomExists(context.Background(), roomID)
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantExists, exists)
		})
	}
}

func TestAssetsRoomExistsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := newClient(server.URL)

	exists, err := client.RoomExists(context.Background(), uuid.New())
	require.Error(t, err)
	assert.False(t, exists)
}

func TestAssetsReady(t *testing.T) {
	type testCase struct {
		name    string
		handler http.HandlerFunc
		want    bool
	}

	cases := []testCase{
		{
			name: "registry reports ready",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v3/assets/health/ready", r.URL.Path)
				_, _ = w.Write([]byte(`{"ready":true}`))
			},
			want: true,
		},
		{
			name: "registry reports not ready",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"ready":false}`))
			},
			want: false,
		},
		{
			name: "non-200 probe means not ready",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			want: false,
		},
		{
			name: "unparseable probe payload means not ready",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := newClient(server.URL)

			assert.Equal(t, tc.want, client.Ready(context.Background()))
		})
	}
}

func TestAssetsReadyUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := newClient(server.URL)

	assert.False(t, client.Ready(context.Background()))
}
