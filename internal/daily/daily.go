package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"

	"puzzlepack/internal/game"
)

// gameKey derives an independent 32-byte generation key for one game from
// the master salt, so the three games' daily streams never correlate.
func gameKey(salt string, g game.ID) []byte {
	r := hkdf.New(sha256.New, []byte(salt), nil, []byte("puzzlepack/"+string(g)))
	key := make([]byte, 32)
	_, _ = io.ReadFull(r, key)
	return key
}

// DaySeed returns a deterministic seed for (salt, game, dayKey) using
// HMAC-SHA256 over the dayKey with the game's derived key. The same day
// always regenerates the same content even before the override write lands.
func DaySeed(salt string, g game.ID, dayKey string) int64 {
	h := hmac.New(sha256.New, gameKey(salt, g))
	h.Write([]byte(dayKey))
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]) >> 1)
}
