package mnist

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stream magic bytes of the supported compression formats. Brotli carries
// no magic and is recognized by a .br file extension instead. A raw data
// file cannot collide with any of these: its first two bytes are always
// zero.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// readDataFile reads path entirely into memory, transparently
// decompressing gzip, Zstandard and LZ4 streams detected by their magic
// bytes, and Brotli streams detected by extension. maxUncompressed bounds
// the decompressed size to keep a hostile file from exhausting memory.
func readDataFile(path string, maxUncompressed uint64) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mnist: reading %s: %w", path, err)
	}
	switch {
	case bytes.HasPrefix(raw, gzipMagic):
		return gzipDecompress(raw, maxUncompressed)
	case bytes.HasPrefix(raw, zstdMagic):
		return zstdDecompress(raw, maxUncompressed)
	case bytes.HasPrefix(raw, lz4Magic):
		return lz4Decompress(raw, maxUncompressed)
	case strings.HasSuffix(path, ".br"):
		return brotliDecompress(raw, maxUncompressed)
	}
	return raw, nil
}

func gzipDecompress(in []byte, max uint64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("mnist: gzip: %w", err)
	}
	defer zr.Close()
	return readCapped(zr, max)
}

func zstdDecompress(in []byte, max uint64) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("mnist: zstd: %w", err)
	}
	defer dec.Close()
	return readCapped(dec, max)
}

func lz4Decompress(in []byte, max uint64) ([]byte, error) {
	return readCapped(lz4.NewReader(bytes.NewReader(in)), max)
}

func brotliDecompress(in []byte, max uint64) ([]byte, error) {
	return readCapped(brotli.NewReader(bytes.NewReader(in)), max)
}

// readCapped drains r, failing once more than max bytes have been produced.
func readCapped(r io.Reader, max uint64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, fmt.Errorf("mnist: decompress: %w", err)
	}
	if uint64(len(b)) > max {
		return nil, fmt.Errorf("%w: decompressed data exceeds %d bytes", ErrLimitExceeded, max)
	}
	return b, nil
}
