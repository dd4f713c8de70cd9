package camellia

import "encoding/binary"

// keyTableLen matches CAMELLIA_TABLE_BYTE_LEN/8 from camellia_simd.h: 34
// 64-bit words (272 bytes) regardless of key length; short keys only
// populate a prefix of the table.
const keyTableLen = 34

// CipherContext holds the expanded round-key table produced by key setup.
// It mirrors struct camellia_simd_ctx from camellia_simd.h: a flat
// key_table of 34 64-bit words plus the key length that selects how many
// of them are meaningful. It is immutable after NewCipherContext returns
// and safe for concurrent use by multiple encrypt/decrypt calls.
type CipherContext struct {
	keyTable  [keyTableLen]uint64
	keyLength int
}

// rotl128 rotates the 128-bit value (hi,lo) left by n bits (0 <= n < 128).
func rotl128(hi, lo uint64, n uint) (uint64, uint64) {
	n %= 128
	if n == 0 {
		return hi, lo
	}
	if n < 64 {
		newHi := hi<<n | lo>>(64-n)
		newLo := lo<<n | hi>>(64-n)
		return newHi, newLo
	}
	n -= 64
	newHi := lo<<n | hi>>(64-n)
	newLo := hi<<n | lo>>(64-n)
	return newHi, newLo
}

// NewCipherContext runs Camellia key setup (RFC 3713 §3) over a 16, 24 or
// 32 byte key and returns the populated context. It returns
// InvalidKeyLengthError for any other length, per §7.
func NewCipherContext(key []byte) (*CipherContext, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, InvalidKeyLengthError(len(key))
	}

	ctx := &CipherContext{keyLength: len(key)}

	kl1 := binary.BigEndian.Uint64(key[0:8])
	kl2 := binary.BigEndian.Uint64(key[8:16])

	var kr1, kr2 uint64
	switch len(key) {
	case 24:
		kr1 = binary.BigEndian.Uint64(key[16:24])
		kr2 = ^kr1
	case 32:
		kr1 = binary.BigEndian.Uint64(key[16:24])
		kr2 = binary.BigEndian.Uint64(key[24:32])
	}

	d1 := kl1 ^ kr1
	d2 := kl2 ^ kr2
	d2 ^= f(d1, sigma1)
	d1 ^= f(d2, sigma2)
	d1 ^= kl1
	d2 ^= kl2
	d2 ^= f(d1, sigma3)
	d1 ^= f(d2, sigma4)
	ka1, ka2 := d1, d2

	var kb1, kb2 uint64
	if len(key) > 16 {
		d1 = ka1 ^ kr1
		d2 = ka2 ^ kr2
		d2 ^= f(d1, sigma5)
		d1 ^= f(d2, sigma6)
		kb1, kb2 = d1, d2
	}

	put := func(idx int, hi, lo uint64) {
		ctx.keyTable[idx] = hi
		ctx.keyTable[idx+1] = lo
	}
	// putHalves stores two independently-rotated halves into one subkey
	// pair, for the irregular slots where RFC 3713's table takes its top
	// half from one rotation and its bottom half from another.
	putHalves := func(idx int, top, bottom uint64) {
		ctx.keyTable[idx] = top
		ctx.keyTable[idx+1] = bottom
	}
	top := func(hi, lo uint64, n uint) uint64 { h, _ := rotl128(hi, lo, n); return h }
	bottom := func(hi, lo uint64, n uint) uint64 { _, l := rotl128(hi, lo, n); return l }

	if len(key) == 16 {
		h, l := rotl128(kl1, kl2, 0)
		put(0, h, l) // kw1, kw2
		h, l = rotl128(ka1, ka2, 0)
		put(2, h, l) // k1, k2
		h, l = rotl128(kl1, kl2, 15)
		put(4, h, l) // k3, k4
		h, l = rotl128(ka1, ka2, 15)
		put(6, h, l) // k5, k6
		h, l = rotl128(ka1, ka2, 30)
		put(8, h, l) // ke1, ke2
		h, l = rotl128(kl1, kl2, 45)
		put(10, h, l) // k7, k8
		// k9, k10 is the one irregular pair of the 128-bit schedule: each
		// takes only one half of its source rotation. k11, k12 are the two
		// halves of KA<<<60.
		putHalves(12, top(ka1, ka2, 45), bottom(kl1, kl2, 60)) // k9, k10
		putHalves(14, top(ka1, ka2, 60), bottom(ka1, ka2, 60)) // k11, k12
		h, l = rotl128(kl1, kl2, 77)
		put(16, h, l) // ke3, ke4
		h, l = rotl128(kl1, kl2, 94)
		put(18, h, l) // k13, k14
		h, l = rotl128(ka1, ka2, 94)
		put(20, h, l) // k15, k16
		h, l = rotl128(kl1, kl2, 111)
		put(22, h, l) // k17, k18
		h, l = rotl128(ka1, ka2, 111)
		put(24, h, l) // kw3, kw4
		return ctx, nil
	}

	// 192/256-bit schedule: regular throughout (no top/bottom crossing),
	// sourced from KL, KA, KR and KB in the fixed order below.
	h, l := rotl128(kl1, kl2, 0)
	put(0, h, l) // kw1, kw2
	h, l = rotl128(kb1, kb2, 0)
	put(2, h, l) // k1, k2
	h, l = rotl128(kr1, kr2, 15)
	put(4, h, l) // k3, k4
	h, l = rotl128(ka1, ka2, 15)
	put(6, h, l) // k5, k6
	h, l = rotl128(kr1, kr2, 30)
	put(8, h, l) // ke1, ke2
	h, l = rotl128(kb1, kb2, 30)
	put(10, h, l) // k7, k8
	h, l = rotl128(kl1, kl2, 45)
	put(12, h, l) // k9, k10
	h, l = rotl128(ka1, ka2, 45)
	put(14, h, l) // k11, k12
	h, l = rotl128(kl1, kl2, 60)
	put(16, h, l) // ke3, ke4
	h, l = rotl128(kr1, kr2, 60)
	put(18, h, l) // k13, k14
	h, l = rotl128(kb1, kb2, 60)
	put(20, h, l) // k15, k16
	h, l = rotl128(kl1, kl2, 77)
	put(22, h, l) // k17, k18
	h, l = rotl128(ka1, ka2, 77)
	put(24, h, l) // ke5, ke6
	h, l = rotl128(kr1, kr2, 94)
	put(26, h, l) // k19, k20
	h, l = rotl128(ka1, ka2, 94)
	put(28, h, l) // k21, k22
	h, l = rotl128(kl1, kl2, 111)
	put(30, h, l) // k23, k24
	h, l = rotl128(kb1, kb2, 111)
	put(32, h, l) // kw3, kw4

	return ctx, nil
}

// KeyLength returns the key length in bytes (16, 24 or 32) used to set up
// this context.
func (c *CipherContext) KeyLength() int {
	return c.keyLength
}

// rounds reports the number of Feistel rounds (18 or 24) for this context.
func (c *CipherContext) rounds() int {
	if c.keyLength == 16 {
		return 18
	}
	return 24
}

// postWhiteningIndex reports the key_table index of the post-whitening
// subkey pair (kw3,kw4): 24 for short keys, 32 for long keys, matching
// §3's invariant "key_table[lastk] is the post-whitening key".
func (c *CipherContext) postWhiteningIndex() int {
	if c.keyLength == 16 {
		return 24
	}
	return 32
}
