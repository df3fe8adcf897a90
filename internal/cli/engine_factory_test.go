package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/taproom/internal/config"
	"github.com/aretw0/taproom/internal/logging"
	"github.com/aretw0/taproom/internal/testutils"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewServices_Defaults(t *testing.T) {
	svc, err := NewServices(context.Background(), config.Defaults(), logging.NewNop())
	require.NoError(t, err)
	defer svc.Close()

	out, err := svc.Engine.Resolve(context.Background(), domain.Turn{Text: "a guinness for table 2"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeProposal, out.Kind)

	rec := httptest.NewRecorder()
	svc.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `taproom_turns_total{outcome="proposal"} 1`)
}

func TestNewServices_MenuFile(t *testing.T) {
	path := testutils.WriteMenu(t, "menu.yaml", `
- id: beer_guinness_pint
  name: Guinness
  price_pence: 600
  tags: [beer, pint, guinness]
`)

	cfg := config.Defaults()
	cfg.Menu.Path = path
	svc, err := NewServices(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	defer svc.Close()

	out, err := svc.Engine.Resolve(context.Background(), domain.Turn{Text: "a guinness for table 2"})
	require.NoError(t, err)
	assert.Equal(t, int64(600), out.Proposal.TotalPence)
}

func TestNewServices_Caches(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		backend string
	}{
		{"memory", config.CacheMemory},
		{"redis", config.CacheRedis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.Cache.Backend = tt.backend
			cfg.Cache.Redis.Addr = mr.Addr()

			svc, err := NewServices(context.Background(), cfg, logging.NewNop())
			require.NoError(t, err)
			defer svc.Close()

			turn := domain.Turn{Text: "two pints of guinness for table 9"}
			first, err := svc.Engine.Resolve(context.Background(), turn)
			require.NoError(t, err)
			second, err := svc.Engine.Resolve(context.Background(), turn)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}

	assert.NotEmpty(t, mr.Keys(), "redis backend should have stored the outcome")
}

func TestNewServices_CloseStopsMemoryJanitor(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := config.Defaults()
	cfg.Cache.Backend = config.CacheMemory
	cfg.Cache.TTL = time.Minute

	svc, err := NewServices(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, svc.Close())
}

func TestNewServices_UnreachableRedis(t *testing.T) {
	var logs bytes.Buffer
	cfg := config.Defaults()
	cfg.Cache.Backend = config.CacheRedis
	cfg.Cache.Redis.Addr = "127.0.0.1:1"
	cfg.Cache.TTL = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	svc, err := NewServices(ctx, cfg, logging.NewWithFormat(&logs, 0, logging.FormatText))
	require.NoError(t, err)
	defer svc.Close()

	assert.Contains(t, logs.String(), "redis cache unreachable")
}

func TestNewServices_UnknownBackend(t *testing.T) {
	cfg := config.Defaults()
	cfg.Cache.Backend = "memcached"
	_, err := NewServices(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "memcached"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(config.LogConfig{Level: "debug", Format: logging.FormatJSON}, &buf)
	require.NoError(t, err)
	logger.Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = NewLogger(config.LogConfig{Level: "loud"}, &buf)
	assert.Error(t, err)
}
