package camellia

import "fmt"

// InvalidKeyLengthError represents an error when the Camellia key length is
// not one of the three RFC 3713 variants (16, 24, 32 bytes).
type InvalidKeyLengthError int

// Error returns the error message for InvalidKeyLengthError.
func (k InvalidKeyLengthError) Error() string {
	return fmt.Sprintf("crypto/camellia: invalid key size %d, key must be 16, 24 or 32 bytes", int(k))
}

// UnsupportedCPUError represents an error returned by EncryptBatch and
// DecryptBatch when the requested variant is neither Simd128 nor Simd256 —
// in practice, a caller that forwards None from SelectVariant straight into
// a batch call, per §6's select_variant() contract. The batch calls do not
// probe the running CPU themselves.
type UnsupportedCPUError struct {
	Requested Variant
}

// Error returns the error message for UnsupportedCPUError.
func (u UnsupportedCPUError) Error() string {
	return fmt.Sprintf("crypto/camellia: unsupported cpu for variant %v", u.Requested)
}

// BatchSizeError represents an error when a batch buffer's length does not
// match the block count a Variant's driver requires, per §4.7 (no partial
// or variable-width batches).
type BatchSizeError struct {
	Variant Variant
	Got     int
}

// Error returns the error message for BatchSizeError.
func (e BatchSizeError) Error() string {
	return fmt.Sprintf("crypto/camellia: %v batch requires %d bytes (%d blocks), got %d",
		e.Variant, e.Variant.BlockCount()*BlockSize, e.Variant.BlockCount(), e.Got)
}
