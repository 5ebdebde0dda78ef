package server

import (
	"context"
	"testing"
	"time"

	xhttp "SentimentScope/pkg/http"
	applogger "SentimentScope/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	closed bool
}

func (c *closeRecorder) GetBytes(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *closeRecorder) SetBytes(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestRunContextStopsOnCancel(t *testing.T) {
	srv := xhttp.NewServer(nil, applogger.Nop(), xhttp.WithHost("127.0.0.1"), xhttp.WithPort(0))
	store := &closeRecorder{}
	app := New(srv, store, applogger.Nop(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, app.RunContext(ctx))
	assert.True(t, store.closed)
}

func TestNewAppliesDefaults(t *testing.T) {
	app := New(nil, nil, nil, 0)
	assert.Equal(t, defaultShutdownTimeout, app.shutdownTimeout)
	assert.NotNil(t, app.logger)
}
