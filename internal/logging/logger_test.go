package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewWithComponent(t *testing.T) {
	entry := NewWithComponent("tracker")
	assert.NotNil(t, entry)
	assert.Equal(t, "tracker", entry.Data["component"])
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, logrus.DebugLevel, levelFromEnv())

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, logrus.WarnLevel, levelFromEnv())

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, logrus.InfoLevel, levelFromEnv())
}
