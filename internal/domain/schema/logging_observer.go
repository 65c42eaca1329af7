package schema

import "log/slog"

// LoggingObserver logs every table event using structured logging.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer; a nil logger means slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Debug("table_event",
		"event", event.Type,
		"table", event.Table,
		"table_id", event.TableID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
