package diagnostics

import (
	"testing"

	"github.com/darkmastermindz/emojicode/pkg/typesys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectingSinkSeparatesErrorsAndWarnings(t *testing.T) {
	sink := NewCollectingSink()
	ReportError(sink, OverrideSealed, typesys.SourcePosition{Line: 1}, "sealed")
	ReportWarning(sink, DeprecatedUse, typesys.SourcePosition{Line: 2}, "deprecated", "https://example.test/docs")

	require.Len(t, sink.Diagnostics(), 2)
	require.Len(t, sink.Errors(), 1)
	require.Len(t, sink.Warnings(), 1)
	assert.Equal(t, OverrideSealed, sink.Errors()[0].Kind)
	assert.Equal(t, "https://example.test/docs", sink.Warnings()[0].DocRef)
}

func TestReportErrorIsNilSafe(t *testing.T) {
	var sink Sink
	assert.NotPanics(t, func() {
		ReportError(sink, ArityMismatch, typesys.SourcePosition{}, "x")
	})
}

func TestZapSinkStillCollects(t *testing.T) {
	sink := NewZapSink(nil)
	ReportError(sink, AccessMismatch, typesys.SourcePosition{Line: 5}, "mismatch")

	require.Len(t, sink.Diagnostics(), 1)
	assert.Equal(t, AccessMismatch, sink.Diagnostics()[0].Kind)
}
