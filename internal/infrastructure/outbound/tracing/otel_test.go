package tracing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/infrastructure/config"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/tracing"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := tracing.Init(context.Background(), config.Tracing{Enabled: false}, "test", logger.New("test"))
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
