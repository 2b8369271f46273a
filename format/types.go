package format

type (
	Version         uint8
	CompressionType uint8
)

const (
	// VersionV0 is the reference StreamVByte layout: 2-bit keys packed four
	// to a byte.
	VersionV0 Version = 0
	// VersionV1 packs keys through a little-endian 2-bit stream writer.
	VersionV1 Version = 1

	// DefaultVersion is the version used when options leave it unset.
	DefaultVersion = VersionV0

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsValid reports whether v names a known StreamVByte layout version.
func (v Version) IsValid() bool {
	return v == VersionV0 || v == VersionV1
}

func (v Version) String() string {
	switch v {
	case VersionV0:
		return "V0"
	case VersionV1:
		return "V1"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
