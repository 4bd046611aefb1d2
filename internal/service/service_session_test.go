package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/mock"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

func TestSessionManager_CreateAndResolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session, cookie, err := env.sessions.Create(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", session.UserID)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "qid", cookie.Name)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 87600*time.Hour, cookie.MaxAge)
	assert.True(t, cookie.HTTPOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, models.SameSiteLax, cookie.SameSite)
	assert.False(t, cookie.Clear)

	assert.True(t, env.mr.Exists("sess:"+session.ID))
	assert.Equal(t, 87600*time.Hour, env.mr.TTL("sess:"+session.ID))
	members, err := env.mr.Members("user-sess:user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{session.ID}, members)

	resolved, err := env.sessions.Resolve(ctx, cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, session, resolved)
}

func TestSessionManager_SecureInProduction(t *testing.T) {
	env := newTestEnv(t)
	sessions := NewSessionManager(env.storages.KeyValueStore, env.cfg.Session, true)

	_, cookie, err := sessions.Create(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, cookie.Secure)
	assert.True(t, sessions.ClearCookie().Secure)
}

func TestSessionManager_ResolveAnonymous(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, cookie, err := env.sessions.Create(ctx, "user-1")
	require.NoError(t, err)

	forged, err := utils.SignSessionToken(env.cfg.Session.Issuer, "does-not-exist", time.Hour, env.cfg.Session.Secret)
	require.NoError(t, err)
	otherKey, err := utils.SignSessionToken(env.cfg.Session.Issuer, "x", time.Hour, "other-secret")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "garbage", value: "not-a-token"},
		{name: "tampered", value: cookie.Value + "x"},
		{name: "unknown session", value: forged},
		{name: "foreign key", value: otherKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := env.sessions.Resolve(ctx, tt.value)
			require.NoError(t, err)
			assert.True(t, s.IsAnonymous())
		})
	}
}

func TestSessionManager_ResolveExpired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cfg := env.cfg.Session
	cfg.TTL = time.Hour
	sessions := NewSessionManager(env.storages.KeyValueStore, cfg, false)

	_, cookie, err := sessions.Create(ctx, "user-1")
	require.NoError(t, err)

	env.mr.FastForward(time.Hour + time.Second)

	s, err := sessions.Resolve(ctx, cookie.Value)
	require.NoError(t, err)
	assert.True(t, s.IsAnonymous())
}

func TestSessionManager_Destroy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, cookie, err := env.sessions.Create(ctx, "user-1")
	require.NoError(t, err)
	second, _, err := env.sessions.Create(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, env.sessions.Destroy(ctx, first))

	s, err := env.sessions.Resolve(ctx, cookie.Value)
	require.NoError(t, err)
	assert.True(t, s.IsAnonymous())

	members, err := env.mr.Members("user-sess:user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID}, members)

	assert.NoError(t, env.sessions.Destroy(ctx, models.Session{}))
}

func TestSessionManager_DestroyAllForUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, c1, err := env.sessions.Create(ctx, "user-1")
	require.NoError(t, err)
	_, c2, err := env.sessions.Create(ctx, "user-1")
	require.NoError(t, err)
	_, other, err := env.sessions.Create(ctx, "user-2")
	require.NoError(t, err)

	require.NoError(t, env.sessions.DestroyAllForUser(ctx, "user-1"))

	for _, value := range []string{c1.Value, c2.Value} {
		s, err := env.sessions.Resolve(ctx, value)
		require.NoError(t, err)
		assert.True(t, s.IsAnonymous())
	}
	assert.False(t, env.mr.Exists("user-sess:user-1"))

	s, err := env.sessions.Resolve(ctx, other.Value)
	require.NoError(t, err)
	assert.Equal(t, "user-2", s.UserID)

	assert.NoError(t, env.sessions.DestroyAllForUser(ctx, "nobody"))
}

func TestSessionManager_ClearCookie(t *testing.T) {
	m := NewSessionManager(nil, config.Session{CookieName: "qid", TTL: time.Hour}, false)
	c := m.ClearCookie()

	assert.Equal(t, "qid", c.Name)
	assert.True(t, c.Clear)
	assert.Empty(t, c.Value)
	assert.Equal(t, "/", c.Path)
}

func TestSessionManager_StoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	cfg := config.Session{CookieName: "qid", TTL: time.Hour, Secret: "s", Issuer: "iss", Prefix: "sess:", UserPrefix: "user-sess:"}
	m := NewSessionManager(kv, cfg, false)
	ctx := context.Background()
	boom := errors.New("connection refused")

	kv.EXPECT().Set(ctx, gomock.Any(), "user-1", time.Hour).Return(boom)
	_, _, err := m.Create(ctx, "user-1")
	assert.ErrorIs(t, err, ErrSessionStoreFailed)
	assert.ErrorIs(t, err, boom)

	value, err := utils.SignSessionToken("iss", "sid", time.Hour, "s")
	require.NoError(t, err)
	kv.EXPECT().Get(ctx, "sess:sid").Return("", boom)
	_, err = m.Resolve(ctx, value)
	assert.ErrorIs(t, err, ErrSessionStoreFailed)

	kv.EXPECT().Delete(ctx, "sess:sid").Return(boom)
	err = m.Destroy(ctx, models.Session{ID: "sid", UserID: "user-1"})
	assert.ErrorIs(t, err, ErrSessionStoreFailed)

	kv.EXPECT().SetMembers(ctx, "user-sess:user-1").Return(nil, boom)
	assert.ErrorIs(t, m.DestroyAllForUser(ctx, "user-1"), ErrSessionStoreFailed)
}
