package params

const (
	// BytesScalar is the byte length of a serialized scalar mod the group order.
	BytesScalar = 32

	// BytesPoint is the byte length of a compressed curve point.
	BytesPoint = 33

	// HexChars is the length of the external hex encoding shared by every
	// 32-byte value (keys, nonces, signature scalars, digests).
	HexChars = 2 * BytesScalar
)
