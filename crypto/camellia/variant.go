package camellia

import "golang.org/x/sys/cpu"

// Variant identifies which batch width a CipherContext should drive,
// mirroring the camellia_encrypt_32blks_simd256/16blks_simd128 split in
// camellia_simd256_x86_aesni.c. select_variant() picks the widest one the
// host CPU's instruction set can support; §6 documents the contract.
type Variant int

const (
	// None means neither SIMD path is available. EncryptBatch and
	// DecryptBatch reject it with UnsupportedCPUError, since this package
	// exposes no narrower, non-batch path to fall back to.
	None Variant = iota
	// Simd128 processes Simd128BlockCount (16) blocks per batch call.
	Simd128
	// Simd256 processes Simd256BlockCount (32) blocks per batch call.
	Simd256
)

// String renders the variant name for error messages and logs.
func (v Variant) String() string {
	switch v {
	case Simd256:
		return "simd256"
	case Simd128:
		return "simd128"
	default:
		return "none"
	}
}

// BlockCount reports how many blocks a batch call for this variant
// processes at once.
func (v Variant) BlockCount() int {
	switch v {
	case Simd256:
		return Simd256BlockCount
	case Simd128:
		return Simd128BlockCount
	default:
		return 1
	}
}

// SelectVariant probes the host CPU for the AES-NI and AVX2 features the
// original field-isomorphism S-box trick relies on and returns the widest
// variant it can support, per §6. AES-NI alone (no AVX2) is reported as
// Simd128; both together as Simd256; neither as None. Callers pass the
// result straight into EncryptBatch/DecryptBatch to size their buffers to
// the batch width and get UnsupportedCPUError back if the host can run
// neither SIMD shape.
func SelectVariant() Variant {
	switch {
	case cpu.X86.HasAES && cpu.X86.HasAVX2:
		return Simd256
	case cpu.X86.HasAES:
		return Simd128
	default:
		return None
	}
}
