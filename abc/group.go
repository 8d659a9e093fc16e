package abc

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GroupID tags one of the three pairing groups. It selects the decoder in
// decodeElement; element encodings themselves carry no tag byte.
type GroupID byte

const (
	// GroupG1 is the first source group of the pairing
	GroupG1 GroupID = 0x01
	// GroupG2 is the second source group of the pairing
	GroupG2 GroupID = 0x02
	// GroupGT is the target group of the pairing
	GroupGT GroupID = 0x03
)

// Element is a group element of G1, G2 or GT, written multiplicatively.
// Operations between elements of different groups panic: mixing groups in a
// single statement is a programming mistake, not a runtime condition.
type Element interface {
	// Group reports which of the three groups the element belongs to.
	Group() GroupID
	// Op returns the group operation applied to the receiver and other.
	Op(other Element) Element
	// Exp returns the receiver raised to k. k is reduced modulo the group order.
	Exp(k *big.Int) Element
	// Equal reports whether both elements are the same point.
	Equal(other Element) bool
	// IsNeutral reports whether the element is the group's neutral element.
	IsNeutral() bool
	// Bytes returns the canonical fixed-width encoding of the element.
	Bytes() []byte
}

type g1Element struct {
	p bls12381.G1Affine
}

type g2Element struct {
	p bls12381.G2Affine
}

type gtElement struct {
	p bls12381.GT
}

// Generator returns the canonical generator of the given group. The GT
// generator is e(g1, g2).
func Generator(id GroupID) Element {
	_, _, g1, g2 := bls12381.Generators()
	switch id {
	case GroupG1:
		return &g1Element{p: g1}
	case GroupG2:
		return &g2Element{p: g2}
	case GroupGT:
		gt, err := bls12381.Pair([]bls12381.G1Affine{g1}, []bls12381.G2Affine{g2})
		if err != nil {
			panic(fmt.Sprintf("abc: pairing of generators failed: %v", err))
		}
		return &gtElement{p: gt}
	default:
		panic(fmt.Sprintf("abc: unknown group id %#x", byte(id)))
	}
}

// decodeElement parses the canonical encoding of an element of the tagged group.
func decodeElement(id GroupID, data []byte) (Element, error) {
	switch id {
	case GroupG1:
		if len(data) != sizeG1 {
			return nil, ErrInvalidMessageData
		}
		var p bls12381.G1Affine
		if _, err := p.SetBytes(data); err != nil {
			return nil, ErrInvalidMessageData
		}
		return &g1Element{p: p}, nil
	case GroupG2:
		if len(data) != sizeG2 {
			return nil, ErrInvalidMessageData
		}
		var p bls12381.G2Affine
		if _, err := p.SetBytes(data); err != nil {
			return nil, ErrInvalidMessageData
		}
		return &g2Element{p: p}, nil
	case GroupGT:
		if len(data) != sizeGT {
			return nil, ErrInvalidMessageData
		}
		var p bls12381.GT
		if err := p.SetBytes(data); err != nil {
			return nil, ErrInvalidMessageData
		}
		return &gtElement{p: p}, nil
	default:
		return nil, ErrInvalidMessageData
	}
}

func (e *g1Element) Group() GroupID { return GroupG1 }

func (e *g1Element) Op(other Element) Element {
	o := mustG1(other)
	var acc, tmp bls12381.G1Jac
	acc.FromAffine(&e.p)
	tmp.FromAffine(&o.p)
	acc.AddAssign(&tmp)
	var out g1Element
	out.p.FromJacobian(&acc)
	return &out
}

func (e *g1Element) Exp(k *big.Int) Element {
	var out g1Element
	out.p.ScalarMultiplication(&e.p, reduceScalar(k))
	return &out
}

func (e *g1Element) Equal(other Element) bool {
	o := mustG1(other)
	return e.p.Equal(&o.p)
}

func (e *g1Element) IsNeutral() bool { return e.p.IsInfinity() }

func (e *g1Element) Bytes() []byte {
	b := e.p.Bytes()
	return b[:]
}

func (e *g2Element) Group() GroupID { return GroupG2 }

func (e *g2Element) Op(other Element) Element {
	o := mustG2(other)
	var acc, tmp bls12381.G2Jac
	acc.FromAffine(&e.p)
	tmp.FromAffine(&o.p)
	acc.AddAssign(&tmp)
	var out g2Element
	out.p.FromJacobian(&acc)
	return &out
}

func (e *g2Element) Exp(k *big.Int) Element {
	var out g2Element
	out.p.ScalarMultiplication(&e.p, reduceScalar(k))
	return &out
}

func (e *g2Element) Equal(other Element) bool {
	o := mustG2(other)
	return e.p.Equal(&o.p)
}

func (e *g2Element) IsNeutral() bool { return e.p.IsInfinity() }

func (e *g2Element) Bytes() []byte {
	b := e.p.Bytes()
	return b[:]
}

func (e *gtElement) Group() GroupID { return GroupGT }

func (e *gtElement) Op(other Element) Element {
	o := mustGT(other)
	var out gtElement
	out.p.Mul(&e.p, &o.p)
	return &out
}

func (e *gtElement) Exp(k *big.Int) Element {
	var out gtElement
	out.p.Exp(e.p, reduceScalar(k))
	return &out
}

func (e *gtElement) Equal(other Element) bool {
	o := mustGT(other)
	return e.p.Equal(&o.p)
}

func (e *gtElement) IsNeutral() bool { return e.p.IsOne() }

func (e *gtElement) Bytes() []byte {
	b := e.p.Bytes()
	return b[:]
}

func mustG1(e Element) *g1Element {
	o, ok := e.(*g1Element)
	if !ok {
		panic("abc: group mismatch, expected G1")
	}
	return o
}

func mustG2(e Element) *g2Element {
	o, ok := e.(*g2Element)
	if !ok {
		panic("abc: group mismatch, expected G2")
	}
	return o
}

func mustGT(e Element) *gtElement {
	o, ok := e.(*gtElement)
	if !ok {
		panic("abc: group mismatch, expected GT")
	}
	return o
}

// pairGT computes e(a, b) as a GT element.
func pairGT(a bls12381.G1Affine, b bls12381.G2Affine) (Element, error) {
	gt, err := bls12381.Pair([]bls12381.G1Affine{a}, []bls12381.G2Affine{b})
	if err != nil {
		return nil, fmt.Errorf("pairing failed: %w", err)
	}
	return &gtElement{p: gt}, nil
}

// reduceScalar maps k into [0, Order). Exponents entering the curve library
// must be canonical.
func reduceScalar(k *big.Int) *big.Int {
	if k.Sign() >= 0 && k.Cmp(Order) < 0 {
		return k
	}
	return new(big.Int).Mod(k, Order)
}

// randomScalar samples a uniform element of Zp.
func randomScalar(rng io.Reader) (*big.Int, error) {
	if rng == nil {
		rng = rand.Reader
	}
	k, err := rand.Int(rng, Order)
	if err != nil {
		return nil, fmt.Errorf("failed to sample scalar: %w", err)
	}
	return k, nil
}

func modAdd(a, b *big.Int) *big.Int {
	s := new(big.Int).Add(a, b)
	return s.Mod(s, Order)
}

func modSub(a, b *big.Int) *big.Int {
	s := new(big.Int).Sub(a, b)
	return s.Mod(s, Order)
}

func modMul(a, b *big.Int) *big.Int {
	s := new(big.Int).Mul(a, b)
	return s.Mod(s, Order)
}
