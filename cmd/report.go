package cmd

import (
	"github.com/getsentry/raven-go"

	"github.com/go-imsto/pngpress/config"
)

var (
	packagePrefixes = []string{"github.com/go-imsto"}
	sentryOn        bool
)

func initSentry(dsn string) {
	if dsn == "" {
		return
	}
	if err := raven.SetDSN(dsn); err != nil {
		logger().Warnw("sentry: bad dsn", "err", err)
		return
	}
	raven.SetTagsContext(map[string]string{"service": "pngpress", "ver": config.Version})
	sentryOn = true
}

// reportError sends err to sentry and waits for delivery.
func reportError(err error, tags map[string]string) {
	if !sentryOn {
		return
	}
	packet := raven.NewPacket(err.Error(),
		raven.NewException(err, raven.NewStacktrace(1, 3, packagePrefixes)))

	if _, ch := raven.Capture(packet, tags); ch != nil {
		if err := <-ch; err != nil {
			logger().Warnw("sentry: capture failed", "err", err)
		}
	}
}
