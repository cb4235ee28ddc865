package app_test

import (
	"testing"

	"go-tutorcenter/internal/app"
	"go-tutorcenter/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildApp_RequiresJWTSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cleanup, err := app.BuildApp(gin.New(), config.Config{}, zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, cleanup)
}

func TestNewLogger_ReplacesGlobal(t *testing.T) {
	prev := zap.L()
	defer zap.ReplaceGlobals(prev)

	logger, err := app.NewLogger(config.Config{AppEnv: config.EnvProduction})
	require.NoError(t, err)
	assert.Same(t, logger, zap.L())
}
