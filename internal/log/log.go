package log

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// stdWriter forwards each JSON line to whatever the standard logger writes
// to, so LOG_FILE tees and tests that swap log.SetOutput see every entry.
type stdWriter struct{}

func (stdWriter) Write(p []byte) (int, error) { return log.Writer().Write(p) }

var logger atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(stdWriter{}).Level(zerolog.InfoLevel)
	logger.Store(&l)
}

// SetLevel changes the minimum level of Info/Security/Error entries.
// Audit entries are always written.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	l := logger.Load().Level(lvl)
	logger.Store(&l)
	return nil
}

func write(ev *zerolog.Event, c *fiber.Ctx, action string, err error, fields map[string]any) {
	if ev == nil {
		return
	}
	ev.Str("ts", time.Now().UTC().Format(time.RFC3339))
	if c != nil {
		ev.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path())
		if st := c.Response().StatusCode(); st != 0 {
			ev.Int("status", st)
		}
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ev.Str("req_id", rid)
		}
	}
	if action != "" {
		ev.Str("action", action)
	}
	if err != nil {
		ev.Str("err", err.Error())
	}
	if len(fields) > 0 {
		ev.Interface("fields", fields)
	}
	ev.Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(logger.Load().Info(), c, action, nil, fields)
}
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(logger.Load().Log().Str("level", "audit"), c, action, nil, fields)
}
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(logger.Load().Warn(), c, action, nil, fields)
}
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(logger.Load().Error(), c, action, err, fields)
}
