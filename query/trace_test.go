package query

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceLogsEveryCall(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	inner := &recordingBuilder{}
	result, err := Parse[string]("a=1|b[2,3]", Trace[string](inner, logger))
	require.NoError(t, err)
	assert.Equal(t, "h3", result)
	assert.Equal(t, []string{"eq(a, 1)", "in(b, [2 3])", "or(h1, h2)"}, inner.calls)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)

	assert.Equal(t, "Building comparison", entries[0].Message)
	assert.Equal(t, "eq", entries[0].Data["op"])
	assert.Equal(t, "a", entries[0].Data["field"])
	assert.Equal(t, int64(1), entries[0].Data["value"])

	assert.Equal(t, "in", entries[1].Data["op"])
	assert.Equal(t, []any{int64(2), int64(3)}, entries[1].Data["value"])

	assert.Equal(t, "Building composite", entries[2].Message)
	assert.Equal(t, "or", entries[2].Data["op"])
	assert.Equal(t, 2, entries[2].Data["operands"])
}

func TestTraceKeepsBuilderErrors(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	errBackend := errors.New("xor unsupported")
	inner := &recordingBuilder{failOn: "xor", err: errBackend}

	_, err := Parse[string]("a=1^b=2", Trace[string](inner, logger))
	assert.Same(t, errBackend, err)
	assert.Equal(t, "Builder rejected composite", hook.LastEntry().Message)
	assert.Equal(t, errBackend, hook.LastEntry().Data[logrus.ErrorKey])
}
