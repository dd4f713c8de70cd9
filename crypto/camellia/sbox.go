package camellia

// filter8 implements filter_8bit from camellia_simd256_x86_aesni.c: split a
// byte into its low and high nibble, use each half as an index into a
// 16-entry table, and XOR the two lookups together. Despite being expressed
// as a 32-bit SIMD shift in the source, the operation is per-byte (see
// DESIGN.md), so it is implemented here directly on a single byte.
func filter8(x byte, lo, hi *[16]byte) byte {
	return lo[x&0x0f] ^ hi[(x>>4)&0x0f]
}

// rotl8 rotates an 8-bit value left by n bits.
func rotl8(x byte, n uint) byte {
	n &= 7
	return x<<n | x>>(8-n)
}

// rotr8 rotates an 8-bit value right by n bits.
func rotr8(x byte, n uint) byte {
	n &= 7
	return x>>n | x<<(8-n)
}

// sbox1 computes Camellia's S1 via the isomorphism trick: an inverse
// shift-row permute (not needed here since we operate on a single byte, and
// the permute cancels against AES's own ShiftRows when done at SIMD-vector
// granularity — see DESIGN.md), a pre-affine nibble lookup, the raw AES
// SubBytes table, and a post-affine nibble lookup.
func sbox1(x byte) byte {
	return filter8(aesSBox[filter8(x, &preTfLoS1, &preTfHiS1)], &postTfLoS1, &postTfHiS1)
}

// sbox2 is S1 rotated left by one bit, per RFC 3713.
func sbox2(x byte) byte {
	return rotl8(sbox1(x), 1)
}

// sbox3 is S1 rotated right by one bit, per RFC 3713.
func sbox3(x byte) byte {
	return rotr8(sbox1(x), 1)
}

// sbox4 is RFC 3713's S1(rotl8(x,1)), computed without a separate rotate:
// preTfLoS4/preTfHiS4 are the pre_tf_s4 tables from the C source, which
// bake the input bit-rotation directly into the nibble lookup (the same
// trick the SIMD implementation uses to avoid a rotate instruction per
// lane). The post-affine step is shared with S1.
func sbox4(x byte) byte {
	return filter8(aesSBox[filter8(x, &preTfLoS4, &preTfHiS4)], &postTfLoS1, &postTfHiS1)
}
