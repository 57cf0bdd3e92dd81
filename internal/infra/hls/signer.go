// Package hls signs playback URLs and serves relay output from a blob bucket.
package hls

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
	"time"

	"masjidcast/config"
	"masjidcast/internal/domain/service"

	"github.com/google/uuid"
)

// PlaylistFile is the HLS master playlist written by the relay.
const PlaylistFile = "index.m3u8"

type hmacSigner struct {
	basePath string
	secret   []byte
	now      func() time.Time
}

// NewPlaybackSigner creates an HMAC-SHA256 signer from the hls config section
func NewPlaybackSigner(cfg *config.Config) service.PlaybackSigner {
	return &hmacSigner{
		basePath: strings.TrimRight(cfg.HLS.BasePath, "/"),
		secret:   []byte(cfg.HLS.SigningSecret),
		now:      time.Now,
	}
}

// SignedURL returns {basePath}/broadcasts/{id}/hls/index.m3u8?exp=..&sig=..
func (s *hmacSigner) SignedURL(broadcastID uuid.UUID, ttl time.Duration) (string, time.Time) {
	expiresAt := s.now().Add(ttl).Truncate(time.Second)
	exp := expiresAt.Unix()

	query := url.Values{}
	query.Set("exp", strconv.FormatInt(exp, 10))
	query.Set("sig", s.sign(broadcastID, exp))

	return s.basePath + "/broadcasts/" + broadcastID.String() + "/hls/" + PlaylistFile + "?" + query.Encode(), expiresAt
}

// Verify checks sig in constant time. An empty secret never verifies.
func (s *hmacSigner) Verify(broadcastID uuid.UUID, exp int64, sig string, now time.Time) bool {
	if len(s.secret) == 0 || sig == "" {
		return false
	}
	if now.Unix() > exp {
		return false
	}

	expected, err := hex.DecodeString(s.sign(broadcastID, exp))
	if err != nil {
		return false
	}
	given, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}

	return hmac.Equal(expected, given)
}

func (s *hmacSigner) sign(broadcastID uuid.UUID, exp int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(broadcastID.String() + "." + strconv.FormatInt(exp, 10)))

	return hex.EncodeToString(mac.Sum(nil))
}
