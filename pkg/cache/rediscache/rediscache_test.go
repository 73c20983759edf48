package rediscache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"football/pkg/cache/rediscache"
)

func setupRedis(t *testing.T) (*rediscache.Cache, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := rediscache.Connect(ctx, rediscache.Options{Addr: fmt.Sprintf("redis://%s:%d/0", host, port.Int())})
	require.NoError(t, err)

	return rediscache.New(client, "test:"), func() {
		_ = client.Close()
		_ = container.Terminate(ctx)
	}
}

func TestCache_SetGetDelete(t *testing.T) {
	c, cleanup := setupRedis(t)
	defer cleanup()
	ctx := context.Background()

	_, found, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.Set(ctx, "teams:445", []byte(`{"count":20}`), time.Minute))
	b, found, err := c.Get(ctx, "teams:445")
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `{"count":20}`, string(b))

	require.NoError(t, c.Delete(ctx, "teams:445", "never-set"))
	_, found, err = c.Get(ctx, "teams:445")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.Delete(ctx))
}

func TestCache_Expiry(t *testing.T) {
	c, cleanup := setupRedis(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("x"), 50*time.Millisecond))
	require.Eventually(t, func() bool {
		_, found, err := c.Get(ctx, "short")

		return err == nil && !found
	}, 3*time.Second, 50*time.Millisecond)
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := rediscache.Connect(ctx, rediscache.Options{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}
