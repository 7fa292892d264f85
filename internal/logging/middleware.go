package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware installs a fresh LogData into each request context and emits
// one structured completion entry per request.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		ctx = huma.WithValue(ctx, logDataKey{}, logData)

		endTimer := logData.AddTiming("durationMs")
		next(ctx)
		endTimer()

		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)
		logData.AddData("status", ctx.Status())
		logData.Log().Info("Request.Complete")
	}
}
