// @Package dongle
// @Description a simple, semantic and developer-friendly golang crypto package
// @Page github.com/dromara/dongle
// @Developer gouguoyin
// @Email 245629560@qq.com

// Package dongle is a simple, semantic and developer-friendly golang crypto
// package. This build focuses the module on a single cipher core,
// Camellia (RFC 3713); see crypto/camellia for key setup, batch
// encrypt/decrypt, and SIMD-variant capability discovery. No single-block
// path is exposed, here or in crypto/camellia: callers drive encryption
// and decryption through fixed-width SIMD128/SIMD256 batches only.
package dongle

import "github.com/dromara/dongle/crypto/camellia"

const Version = "1.1.8"

// NewCipherContext is a convenience re-export of camellia.NewCipherContext,
// so callers can reach key setup from the root package the way they would
// reach Encrypt/Decrypt on older, multi-algorithm builds of this module.
func NewCipherContext(key []byte) (*camellia.CipherContext, error) {
	return camellia.NewCipherContext(key)
}

// SelectVariant is a convenience re-export of camellia.SelectVariant.
func SelectVariant() camellia.Variant {
	return camellia.SelectVariant()
}

// EncryptBatch is a convenience re-export of camellia.EncryptBatch.
func EncryptBatch(ctx *camellia.CipherContext, dst, src []byte, variant camellia.Variant) error {
	return camellia.EncryptBatch(ctx, dst, src, variant)
}

// DecryptBatch is a convenience re-export of camellia.DecryptBatch.
func DecryptBatch(ctx *camellia.CipherContext, dst, src []byte, variant camellia.Variant) error {
	return camellia.DecryptBatch(ctx, dst, src, variant)
}
