package botapi

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.Disabled, parseLevel("disabled"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("loud"))
}

func TestLogOutput(t *testing.T) {
	_, ok := logOutput("dev", "").(zerolog.ConsoleWriter)
	assert.True(t, ok)

	assert.Equal(t, os.Stderr, logOutput("prod", ""))

	_, ok = logOutput("prod", t.TempDir()+"/bot.log").(zerolog.LevelWriter)
	assert.True(t, ok)
}
