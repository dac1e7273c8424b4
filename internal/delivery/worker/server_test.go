package worker

import (
	"testing"

	"passport/config"

	"github.com/stretchr/testify/assert"
)

func TestListenSettings(t *testing.T) {
	base := func() *config.Config {
		cfg := &config.Config{}
		cfg.HTTP.Port = 8080

		return cfg
	}

	t.Run("falls back to the http section", func(t *testing.T) {
		port, path := listenSettings(base())

		assert.Equal(t, 8080, port)
		assert.Equal(t, "/push", path)
	})

	t.Run("mail worker section wins", func(t *testing.T) {
		cfg := base()
		cfg.MailWorker = &config.MailWorkerConfig{Port: 8081, PushPath: "/pubsub/email"}

		port, path := listenSettings(cfg)

		assert.Equal(t, 8081, port)
		assert.Equal(t, "/pubsub/email", path)
	})

	t.Run("partial section", func(t *testing.T) {
		cfg := base()
		cfg.MailWorker = &config.MailWorkerConfig{Port: 9090}

		port, path := listenSettings(cfg)

		assert.Equal(t, 9090, port)
		assert.Equal(t, "/push", path)
	})
}
