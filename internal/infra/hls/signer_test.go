package hls

import (
	"net/url"
	"strconv"
	"testing"
	"time"

	"masjidcast/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(secret string) *hmacSigner {
	cfg := &config.Config{HLS: &config.HLSConfig{BasePath: "/api/v1/", SigningSecret: secret}}
	s := NewPlaybackSigner(cfg).(*hmacSigner)
	s.now = func() time.Time { return time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC) }

	return s
}

func parseSigned(t *testing.T, raw string) (path string, exp int64, sig string) {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)
	exp, err = strconv.ParseInt(u.Query().Get("exp"), 10, 64)
	require.NoError(t, err)

	return u.Path, exp, u.Query().Get("sig")
}

func TestHMACSigner_SignAndVerify(t *testing.T) {
	s := newTestSigner("secret")
	id := uuid.New()

	raw, expiresAt := s.SignedURL(id, time.Hour)
	path, exp, sig := parseSigned(t, raw)

	assert.Equal(t, "/api/v1/broadcasts/"+id.String()+"/hls/index.m3u8", path)
	assert.Equal(t, expiresAt.Unix(), exp)
	assert.Equal(t, s.now().Add(time.Hour), expiresAt)
	assert.Len(t, sig, 64)

	assert.True(t, s.Verify(id, exp, sig, s.now()))
	assert.True(t, s.Verify(id, exp, sig, expiresAt))
}

func TestHMACSigner_Rejects(t *testing.T) {
	s := newTestSigner("secret")
	id := uuid.New()

	raw, expiresAt := s.SignedURL(id, time.Minute)
	_, exp, sig := parseSigned(t, raw)

	tests := []struct {
		name string
		id   uuid.UUID
		exp  int64
		sig  string
		now  time.Time
	}{
		{"expired", id, exp, sig, expiresAt.Add(time.Second)},
		{"other broadcast", uuid.New(), exp, sig, s.now()},
		{"extended expiry", id, exp + 3600, sig, s.now()},
		{"not hex", id, exp, "zz", s.now()},
		{"empty", id, exp, "", s.now()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, s.Verify(tt.id, tt.exp, tt.sig, tt.now))
		})
	}
}

func TestHMACSigner_DifferentSecrets(t *testing.T) {
	id := uuid.New()
	raw, _ := newTestSigner("one").SignedURL(id, time.Hour)
	_, exp, sig := parseSigned(t, raw)

	other := newTestSigner("two")
	assert.False(t, other.Verify(id, exp, sig, other.now()))

	unsigned := newTestSigner("")
	assert.False(t, unsigned.Verify(id, exp, sig, unsigned.now()))
}
