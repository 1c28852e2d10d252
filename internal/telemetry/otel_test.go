package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"collabhub/internal/config/configs"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), configs.Telemetry{ServiceName: "collabhub"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupWithEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), configs.Telemetry{
		Endpoint:    "http://192.0.2.1:4318/v1/traces",
		ServiceName: "collabhub-test",
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
