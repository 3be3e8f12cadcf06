package logrus

import (
	"bytes"
	"errors"
	"testing"

	"github.com/raykavin/momentum/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	base := logrus.New()
	base.SetOutput(buffer)
	base.SetFormatter(&logrus.JSONFormatter{})

	log := New(base)
	log.SetLevel(logger.InfoLevel)
	require.Equal(t, logger.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	assert.Empty(t, buffer.String())

	log.WithField("indicator", "AO_5_34").WithError(errors.New("boom")).Warnf("fallback %d", 1)
	out := buffer.String()
	assert.Contains(t, out, `"indicator":"AO_5_34"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, "fallback 1")
}
