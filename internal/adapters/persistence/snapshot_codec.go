package persistence

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"lukechampine.com/blake3"

	"github.com/10igma/spacetrader-web/internal/domain/game"
)

// ErrCorruptSnapshot is returned when a stored game does not match its digest
var ErrCorruptSnapshot = fmt.Errorf("game snapshot is corrupt")

type snapshot struct {
	data   []byte
	size   int
	digest string
}

// encodeGame serializes the game, compresses it and computes its digest.
// The digest covers the uncompressed JSON, so it equals Game.Digest.
func encodeGame(g *game.Game) (*snapshot, error) {
	raw, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game: %w", err)
	}

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("failed to compress game: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress game: %w", err)
	}

	return &snapshot{data: buf.Bytes(), size: len(raw), digest: hashState(raw)}, nil
}

// decodeGame inflates a stored snapshot and checks it against its digest
func decodeGame(data []byte, size int, digest string) (*game.Game, error) {
	raw := bytes.NewBuffer(make([]byte, 0, size))
	if _, err := io.Copy(raw, lz4.NewReader(bytes.NewReader(data))); err != nil {
		return nil, fmt.Errorf("failed to decompress game: %w", err)
	}
	if hashState(raw.Bytes()) != digest {
		return nil, ErrCorruptSnapshot
	}

	var g game.Game
	if err := json.Unmarshal(raw.Bytes(), &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}
	return &g, nil
}

func hashState(raw []byte) string {
	sum := blake3.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
