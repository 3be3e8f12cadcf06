package zerolog

import (
	"bytes"
	"testing"

	"github.com/raykavin/momentum/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	log, err := New(Options{Level: "info", JSON: true, Out: buffer})
	require.NoError(t, err)
	require.Equal(t, logger.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	assert.Empty(t, buffer.String())

	log.WithFields(map[string]any{"name": "BOP"}).Infof("computed %d values", 3)
	assert.Contains(t, buffer.String(), `"name":"BOP"`)
	assert.Contains(t, buffer.String(), "computed 3 values")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestAdapter_SetLevel(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	log, err := New(Options{Level: "debug", JSON: true, Out: buffer})
	require.NoError(t, err)

	log.SetLevel(logger.ErrorLevel)
	assert.Equal(t, logger.ErrorLevel, log.GetLevel())
	log.Warn("hidden")
	assert.Empty(t, buffer.String())
}
