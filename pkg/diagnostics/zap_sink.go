package diagnostics

import "go.uber.org/zap"

// ZapSink both collects diagnostics (so callers can still inspect them
// after the fact) and logs each one through a *zap.Logger as it arrives,
// the way the teacher's own services log structurally through zap rather
// than fmt.Printf.
type ZapSink struct {
	*CollectingSink
	log *zap.Logger
}

// NewZapSink wraps log (falling back to a no-op logger if nil) in a Sink.
func NewZapSink(log *zap.Logger) *ZapSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapSink{CollectingSink: NewCollectingSink(), log: log}
}

// Report logs d at warn or error level, then delegates to CollectingSink.
func (s *ZapSink) Report(d Diagnostic) {
	fields := []zap.Field{
		zap.String("kind", string(d.Kind)),
		zap.String("position", d.Position.String()),
	}
	if d.DocRef != "" {
		fields = append(fields, zap.String("doc", d.DocRef))
	}
	if d.Severity == SeverityWarning {
		s.log.Warn(d.Message, fields...)
	} else {
		s.log.Error(d.Message, fields...)
	}
	s.CollectingSink.Report(d)
}
