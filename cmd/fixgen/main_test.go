package main

import (
	"bytes"
	"testing"

	"github.com/3Red/FIXParser/internal/aggregate"
	"github.com/3Red/FIXParser/internal/fix"
	"github.com/3Red/FIXParser/internal/pipeline"
	"github.com/3Red/FIXParser/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMatchesPipelineTotal(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	sum, err := generate(&buf, 500, 7, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 500, sum.Messages)
	assert.Equal(t, buf.Len(), sum.BytesSize)
	assert.Positive(t, sum.Matched)
	assert.Less(t, sum.Matched, 500)

	for _, s := range []fix.Strategy{fix.StrategyFull, fix.StrategySelective} {
		acc := aggregate.New()
		msg, err := fix.NewMessage(s, buf.Bytes(), acc.Wants()...)
		require.NoError(t, err)
		res, err := pipeline.Run(buf.Bytes(), msg, acc)
		require.NoError(t, err)
		assert.Equal(t, sum.Quantity, res.Total, s)
		assert.Equal(t, sum.Matched, res.Matched, s)
		assert.Equal(t, buf.Len(), res.Consumed, s)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	_, err := generate(&a, 50, 3, 0.6)
	require.NoError(t, err)
	_, err = generate(&b, 50, 3, 0.6)
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())

	_, err = generate(&a, -1, 3, 0.6)
	assert.Error(t, err)
}
