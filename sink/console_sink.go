package sink

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"wa-gateway/domain/event"

	"github.com/skip2/go-qrcode"
)

// ConsoleSink reports lifecycle transitions in the logs and draws each new
// login challenge on the terminal so it can be scanned without calling /qr.
type ConsoleSink struct {
	log *slog.Logger
	out io.Writer
}

func NewConsoleSink(log *slog.Logger, out io.Writer) ConsoleSink {
	return ConsoleSink{log: log, out: out}
}

func (c ConsoleSink) Consume(_ context.Context, e event.LifecycleEvent) error {
	switch evt := e.(type) {
	case event.QRIssued:
		c.log.Info("QR code issued, scan it with the phone")
		if c.out == nil {
			return nil
		}
		q, err := qrcode.New(evt.Code, qrcode.Low)
		if err != nil {
			return fmt.Errorf("terminal QR rendering failed: %w", err)
		}
		_, err = fmt.Fprintln(c.out, q.ToSmallString(false))
		return err
	case event.Authenticated:
		c.log.Info("Authenticated")
	case event.Ready:
		c.log.Info("Messaging client connected and ready")
	case event.AuthFailure:
		c.log.Warn("Authentication failure", "reason", evt.Reason)
	case event.Disconnected:
		c.log.Warn("Messaging client disconnected", "reason", evt.Reason)
	default:
		c.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
	}
	return nil
}
