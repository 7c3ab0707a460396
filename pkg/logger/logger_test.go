package logger_test

import (
	"context"
	"testing"

	"homecatalog/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	for _, environment := range []string{
		logger.DevelopmentEnvironment,
		logger.ProductionEnvironment,
	} {
		t.Run(environment, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(environment)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGetPrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "default logger expected for a bare context")

	custom, _ := zap.NewDevelopment()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := logger.WithFields(context.Background(), zap.Int64("bggId", 266192))
	require.NotEqual(t, logger.Get(context.Background()), logger.Get(ctx),
		"WithFields should derive a new logger")

	// helpers must not panic on a derived context
	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug")
		logger.Info(ctx, "info")
		logger.Warn(ctx, "warn")
		logger.Error(ctx, "error")
	})
}
