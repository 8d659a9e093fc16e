package abc

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Wire helpers shared by every message codec. The format is deterministic:
// counts and lengths are 4-byte big-endian, scalars are 32-byte big-endian,
// group elements use the compressed curve encoding. Every top-level message
// starts with a one-byte version.

func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendScalar(b []byte, s *big.Int) []byte {
	var buf [sizeScalar]byte
	reduceScalar(s).FillBytes(buf[:])
	return append(b, buf[:]...)
}

func appendString(b []byte, s string) []byte {
	b = appendUint32(b, uint32(len(s)))
	return append(b, s...)
}

func appendG1(b []byte, p *bls12381.G1Affine) []byte {
	enc := p.Bytes()
	return append(b, enc[:]...)
}

func appendG2(b []byte, p *bls12381.G2Affine) []byte {
	enc := p.Bytes()
	return append(b, enc[:]...)
}

func appendGT(b []byte, p *bls12381.GT) []byte {
	enc := p.Bytes()
	return append(b, enc[:]...)
}

// wireReader walks a wire buffer. Every accessor reports failure through a
// boolean; callers surface a single decode error so that no detail about
// where parsing stopped leaks to the peer.
type wireReader struct {
	buf []byte
}

func (r *wireReader) take(n int) ([]byte, bool) {
	if n < 0 || len(r.buf) < n {
		return nil, false
	}
	out := r.buf[:n]
	r.buf = r.buf[n:]
	return out, true
}

func (r *wireReader) version() bool {
	b, ok := r.take(1)
	return ok && b[0] == wireVersion
}

func (r *wireReader) uint32() (uint32, bool) {
	b, ok := r.take(4)
	if !ok {
		return 0, false
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), true
}

func (r *wireReader) scalar() (*big.Int, bool) {
	b, ok := r.take(sizeScalar)
	if !ok {
		return nil, false
	}
	s := new(big.Int).SetBytes(b)
	if s.Cmp(Order) >= 0 {
		return nil, false
	}
	return s, true
}

func (r *wireReader) string() (string, bool) {
	n, ok := r.uint32()
	if !ok {
		return "", false
	}
	b, ok := r.take(int(n))
	if !ok {
		return "", false
	}
	return string(b), true
}

func (r *wireReader) g1() (bls12381.G1Affine, bool) {
	var p bls12381.G1Affine
	b, ok := r.take(sizeG1)
	if !ok {
		return p, false
	}
	if _, err := p.SetBytes(b); err != nil {
		return p, false
	}
	return p, true
}

func (r *wireReader) g2() (bls12381.G2Affine, bool) {
	var p bls12381.G2Affine
	b, ok := r.take(sizeG2)
	if !ok {
		return p, false
	}
	if _, err := p.SetBytes(b); err != nil {
		return p, false
	}
	return p, true
}

func (r *wireReader) gt() (bls12381.GT, bool) {
	var p bls12381.GT
	b, ok := r.take(sizeGT)
	if !ok {
		return p, false
	}
	if err := p.SetBytes(b); err != nil {
		return p, false
	}
	return p, true
}

func (r *wireReader) done() bool {
	return len(r.buf) == 0
}
