package camellia

// slicedState is the byte-sliced layout §4.2 describes: instead of n
// consecutive 16-byte blocks, the state is 16 lane vectors, each n bytes
// long, where abLanes[i][b] and cdLanes[i][b] hold byte i of block b's AB
// and CD halves respectively. Every later stage (S-box, P-function, FL/
// FL⁻¹, whitening) operates across a lane's n entries at once instead of
// looping over whole blocks, which is the data-parallel shape the SIMD128/
// SIMD256 drivers in batch.go are built on.
type slicedState struct {
	abLanes [8][]byte
	cdLanes [8][]byte
	n       int
}

// transposeIn packs n consecutive 16-byte blocks from buf into a
// slicedState. Byte i of block b lands in abLanes[i][b] for i<8 and
// cdLanes[i-8][b] for i>=8 — the inverse of transposeOut.
func transposeIn(buf []byte, n int) *slicedState {
	s := &slicedState{n: n}
	for i := 0; i < 8; i++ {
		s.abLanes[i] = make([]byte, n)
		s.cdLanes[i] = make([]byte, n)
	}
	for b := 0; b < n; b++ {
		block := buf[b*BlockSize : b*BlockSize+BlockSize]
		for i := 0; i < 8; i++ {
			s.abLanes[i][b] = block[i]
			s.cdLanes[i][b] = block[8+i]
		}
	}
	return s
}

// transposeOut unpacks a slicedState back into n consecutive 16-byte
// blocks in buf, restoring lane position b of every lane vector as block
// b's bytes — the invariant §4.2 requires of the transpose.
func (s *slicedState) transposeOut(buf []byte) {
	for b := 0; b < s.n; b++ {
		block := buf[b*BlockSize : b*BlockSize+BlockSize]
		for i := 0; i < 8; i++ {
			block[i] = s.abLanes[i][b]
			block[8+i] = s.cdLanes[i][b]
		}
	}
}

// swapHalves exchanges the AB and CD lane sets, the sliced-state
// equivalent of a scalar Feistel round's d1, d2 = d2, d1.
func (s *slicedState) swapHalves() {
	s.abLanes, s.cdLanes = s.cdLanes, s.abLanes
}
