package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID       = "run_id"
	KeyRoot        = "root"
	KeyPath        = "path"
	KeyFile        = "file"
	KeyStage       = "stage"
	KeySection     = "section"
	KeyClassifier  = "classifier"
	KeyProjectType = "project_type"
	KeyDurationMS  = "duration_ms"
	KeyCount       = "count"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr          { return slog.String(KeyRunID, id) }
func Root(p string) slog.Attr            { return slog.String(KeyRoot, p) }
func Path(p string) slog.Attr            { return slog.String(KeyPath, p) }
func File(f string) slog.Attr            { return slog.String(KeyFile, f) }
func Stage(name string) slog.Attr        { return slog.String(KeyStage, name) }
func Section(s string) slog.Attr         { return slog.String(KeySection, s) }
func Classifier(name string) slog.Attr   { return slog.String(KeyClassifier, name) }
func ProjectType(label string) slog.Attr { return slog.String(KeyProjectType, label) }
func DurationMS(ms float64) slog.Attr    { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr              { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
