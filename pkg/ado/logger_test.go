package ado

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusLogger(t *testing.T) {
	t.Parallel()

	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	logger := NewLogrusLogger(logrus.NewEntry(base))
	logger.Debug("debug", map[string]interface{}{"k": 1})
	logger.Info("info", nil)
	logger.Warn("warn", nil)
	logger.Error("error", nil)

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, 1, entries[0].Data["k"])
	assert.Equal(t, "ado", entries[0].Data["logger"])
	assert.Equal(t, logrus.ErrorLevel, entries[3].Level)
}

func TestChildLogger(t *testing.T) {
	t.Parallel()

	base, hook := test.NewNullLogger()

	child := ChildLogger(NewLogrusLogger(logrus.NewEntry(base)), "pools")
	grandchild := ChildLogger(child, "agents")

	child.Info("child", nil)
	grandchild.Info("grandchild", nil)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "ado.pools", entries[0].Data["logger"])
	assert.Equal(t, "ado.pools.agents", entries[1].Data["logger"])

	assert.Equal(t, NopLogger{}, ChildLogger(nil, "x"))

	plain := NopLogger{}
	assert.Equal(t, plain, ChildLogger(plain, "x"))
}
