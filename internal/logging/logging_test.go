package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	closeLog, err := Setup(path, "debug")
	require.NoError(t, err)

	logrus.WithField("score", 3).Debug("apple eaten")
	require.NoError(t, closeLog())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "apple eaten")
	assert.Contains(t, string(content), "score=3")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestSetupDefaultLevel(t *testing.T) {
	closeLog, err := Setup("", "")
	require.NoError(t, err)
	defer closeLog()

	assert.Equal(t, DefaultLevel, logrus.GetLevel())
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, err := Setup("", "loud")
	assert.Error(t, err)
}

func TestSetupBadPath(t *testing.T) {
	_, err := Setup(filepath.Join(t.TempDir(), "missing", "snake.log"), "")
	assert.Error(t, err)
}
