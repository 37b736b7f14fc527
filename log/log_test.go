package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetZap(t *testing.T) {
	saved := Get()
	defer Set(saved)

	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core).Sugar())
	Set(nil) // ignored

	Infow("converted", "input", "images/a.png")
	Debugw("skip", "path", "x")

	assert.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "converted", entry.Message)
	assert.Equal(t, "images/a.png", entry.ContextMap()["input"])
}
