package service

import (
	"context"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/mailer"
	"github.com/MKhiriev/go-session-auth/internal/metrics"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/validators"
	"github.com/MKhiriev/go-session-auth/internal/workers"
)

type sentMail struct {
	to   string
	html string
}

// outbox is a Mailer that keeps every message in memory.
type outbox struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (o *outbox) Send(_ context.Context, to, html string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.sent = append(o.sent, sentMail{to: to, html: html})
	return nil
}

func (o *outbox) messages() []sentMail {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]sentMail(nil), o.sent...)
}

var resetLinkRe = regexp.MustCompile(`/change-password/([A-Za-z0-9_-]+)`)

// lastToken extracts the reset token from the most recent message.
func (o *outbox) lastToken(t *testing.T) string {
	t.Helper()
	msgs := o.messages()
	require.NotEmpty(t, msgs, "no mail was sent")
	m := resetLinkRe.FindStringSubmatch(msgs[len(msgs)-1].html)
	require.Len(t, m, 2, "no reset link in mail")
	return m[1]
}

type testEnv struct {
	mr       *miniredis.Miniredis
	storages *store.Storages
	auth     AuthService
	sessions SessionManager
	resets   ResetTokenService
	outbox   *outbox
	metrics  *metrics.Metrics
	cfg      *config.StructuredConfig
}

func testConfig(dsn, redisAddr string) *config.StructuredConfig {
	cfg := config.Defaults()
	cfg.Storage.DB.DSN = dsn
	cfg.Storage.Redis.Address = redisAddr
	cfg.Session.Secret = "test-secret"
	return cfg
}

// newTestEnv wires the real stores (SQLite file and miniredis) and a cheap
// argon2id hasher.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cfg := testConfig("sqlite://"+filepath.Join(t.TempDir(), "auth.db"), mr.Addr())

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	pool := workers.NewPool(2, 8)
	pool.Run()
	t.Cleanup(pool.Stop)

	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	hasher := crypto.NewPasswordHasher(
		crypto.NewArgon2idHasher(crypto.Argon2Params{MemoryKiB: 8 * 1024, Iterations: 1, Threads: 1}),
		pool,
		m,
	)

	templates, err := mailer.NewTemplates(cfg.App.BaseURL)
	require.NoError(t, err)

	box := &outbox{}
	sessions := NewSessionManager(storages.KeyValueStore, cfg.Session, false)
	resets := NewResetTokenService(storages.KeyValueStore, cfg.Reset, cfg.Session.Secret)

	auth := NewAuthService(AuthDeps{
		Credentials: storages.CredentialStore,
		Hasher:      hasher,
		Sessions:    sessions,
		Resets:      resets,
		Validator:   validators.NewAuthValidator(cfg.Validation),
		Mailer:      box,
		Templates:   templates,
		ResetTTL:    cfg.Reset.TokenTTL,
		Metrics:     m,
	})

	return &testEnv{
		mr:       mr,
		storages: storages,
		auth:     auth,
		sessions: sessions,
		resets:   resets,
		outbox:   box,
		metrics:  m,
		cfg:      cfg,
	}
}

const resetTTL = 72 * time.Hour
