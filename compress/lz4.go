package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression for host-filter payloads
// where decompression speed matters more than ratio.
//
// LZ4 blocks carry neither the decompressed size nor an incompressible
// marker, so the codec prefixes each payload with a uvarint header:
// originalSize<<1 | storedFlag. A set flag means the block was
// incompressible and follows raw.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// lz4MaxPayloadSize bounds the size a header may declare, preventing huge
// allocations from corrupted input.
const lz4MaxPayloadSize = 128 * 1024 * 1024

var errLZ4Corrupted = errors.New("lz4: corrupted payload")

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data as a single size-prefixed LZ4 block.
//
// Uses a pooled lz4.Compressor for better performance. Incompressible
// input is stored raw behind the header instead of failing.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	header := make([]byte, 0, binary.MaxVarintLen64)
	dst := binary.AppendUvarint(header, uint64(len(data))<<1)
	headerLen := len(dst)
	dst = append(dst, make([]byte, lz4.CompressBlockBound(len(data)))...)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[headerLen:])
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible: store the payload raw and flag it in the header.
		dst = binary.AppendUvarint(dst[:0], uint64(len(data))<<1|1)
		return append(dst, data...), nil
	}

	return dst[:headerLen+n], nil
}

// Decompress decompresses a size-prefixed LZ4 block.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	header, headerLen := binary.Uvarint(data)
	if headerLen <= 0 {
		return nil, fmt.Errorf("%w: invalid size header", errLZ4Corrupted)
	}

	size := header >> 1
	stored := header&1 == 1
	payload := data[headerLen:]

	if size > lz4MaxPayloadSize {
		return nil, fmt.Errorf("%w: declared size %d exceeds limit", errLZ4Corrupted, size)
	}

	if stored {
		if uint64(len(payload)) != size {
			return nil, fmt.Errorf("%w: stored payload length mismatch", errLZ4Corrupted)
		}
		out := make([]byte, size)
		copy(out, payload)

		return out, nil
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(payload, buf)
	if err != nil {
		return nil, err
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("%w: decompressed length mismatch", errLZ4Corrupted)
	}

	return buf, nil
}
