package camellia

// rotl32 rotates a 32-bit value left by n bits.
func rotl32(x uint32, n uint) uint32 {
	n &= 31
	return x<<n | x>>(32-n)
}

// sboxLanes applies the fixed s1,s2,s3,s4,s2,s3,s4,s1 lane-to-table mapping
// (the roundsm16 assignment traced in DESIGN.md) to one byte from each of
// the F-function's 8 input lanes.
func sboxLanes(t1, t2, t3, t4, t5, t6, t7, t8 byte) (y1, y2, y3, y4, y5, y6, y7, y8 byte) {
	return sbox1(t1), sbox2(t2), sbox3(t3), sbox4(t4), sbox2(t5), sbox3(t6), sbox4(t7), sbox1(t8)
}

// pFunction is Camellia's fixed P-function: the XOR network that combines
// the 8 S-box outputs of one F-function application into 8 output bytes
// (RFC 3713 §2). It is shared by the scalar round function f() and by the
// byte-sliced lane driver in batch.go, which calls it once per lane
// position across every block in a batch instead of once per block.
func pFunction(y1, y2, y3, y4, y5, y6, y7, y8 byte) (z1, z2, z3, z4, z5, z6, z7, z8 byte) {
	z1 = y1 ^ y3 ^ y4 ^ y6 ^ y7 ^ y8
	z2 = y1 ^ y2 ^ y4 ^ y5 ^ y7 ^ y8
	z3 = y1 ^ y2 ^ y3 ^ y5 ^ y6 ^ y8
	z4 = y2 ^ y3 ^ y4 ^ y5 ^ y6 ^ y7
	z5 = y1 ^ y2 ^ y6 ^ y7 ^ y8
	z6 = y2 ^ y3 ^ y5 ^ y7 ^ y8
	z7 = y3 ^ y4 ^ y5 ^ y6 ^ y8
	z8 = y1 ^ y4 ^ y5 ^ y6 ^ y7
	return
}

// f applies Camellia's Feistel round function (RFC 3713 §2): the input is
// XORed with the round key, split into 8 bytes that each go through one of
// the four S-boxes, and the 8 S-box outputs are combined by pFunction.
//
// f is retained as the scalar reference used by the package's own
// cross-validation tests (see batch_test.go); production encryption runs
// through the byte-sliced driver in batch.go, which reuses sboxLanes and
// pFunction directly instead of calling f once per block.
func f(in, subkey uint64) uint64 {
	x := in ^ subkey

	t1 := byte(x >> 56)
	t2 := byte(x >> 48)
	t3 := byte(x >> 40)
	t4 := byte(x >> 32)
	t5 := byte(x >> 24)
	t6 := byte(x >> 16)
	t7 := byte(x >> 8)
	t8 := byte(x)

	y1, y2, y3, y4, y5, y6, y7, y8 := sboxLanes(t1, t2, t3, t4, t5, t6, t7, t8)
	z1, z2, z3, z4, z5, z6, z7, z8 := pFunction(y1, y2, y3, y4, y5, y6, y7, y8)

	return uint64(z1)<<56 | uint64(z2)<<48 | uint64(z3)<<40 | uint64(z4)<<32 |
		uint64(z5)<<24 | uint64(z6)<<16 | uint64(z7)<<8 | uint64(z8)
}

// fl applies the FL non-Feistel sub-layer to the AB half, per §4.5:
// lr ^= rol1(ll & kll); ll ^= lr | klr.
func fl(in, subkey uint64) uint64 {
	x1 := uint32(in >> 32)
	x2 := uint32(in)
	k1 := uint32(subkey >> 32)
	k2 := uint32(subkey)

	x2 ^= rotl32(x1&k1, 1)
	x1 ^= x2 | k2

	return uint64(x1)<<32 | uint64(x2)
}

// flInv applies the inverse FL sub-layer (FL⁻¹) to the CD half, per §4.5:
// rl ^= rr | krr; rr ^= rol1(rl & krl).
func flInv(in, subkey uint64) uint64 {
	y1 := uint32(in >> 32)
	y2 := uint32(in)
	k1 := uint32(subkey >> 32)
	k2 := uint32(subkey)

	y1 ^= y2 | k2
	y2 ^= rotl32(y1&k1, 1)

	return uint64(y1)<<32 | uint64(y2)
}
