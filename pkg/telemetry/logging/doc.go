// Package logging builds the structured loggers used by rql.
//
// Loggers are plain *slog.Logger values configured from the telemetry.logging
// section of the configuration file:
//
//	logger, err := logging.New(logging.Config{Level: "debug", Format: "json"})
//	if err != nil {
//	    return err
//	}
//	logger.Info("Query built", "path", "/users", "fragments", 2)
//
// The console format is a text handler without timestamps, meant for
// interactive use. Loggers travel through a context with NewContext and
// FromContext.
package logging
