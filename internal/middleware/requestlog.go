package middleware

import (
	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RequestLogger reports one line per request through log. Server errors are
// logged at error level, client errors at warn.
func RequestLogger(log hclog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			args := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
			}
			if v.RequestID != "" {
				args = append(args, "request_id", v.RequestID)
			}
			switch {
			case v.Error != nil && v.Status >= 500:
				log.Error("request", append(args, "error", v.Error)...)
			case v.Status >= 500:
				log.Error("request", args...)
			case v.Status >= 400:
				log.Warn("request", args...)
			default:
				log.Info("request", args...)
			}
			return nil
		},
	})
}
