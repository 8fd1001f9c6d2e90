package curve

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ckanthony/eots-sign-poc/internal/params"
)

var (
	secp256k1BaseX, secp256k1BaseY secp256k1.FieldVal

	secp256k1Order *saferith.Modulus
)

func init() {
	Gx, _ := hex.DecodeString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	Gy, _ := hex.DecodeString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	secp256k1BaseX.SetByteSlice(Gx)
	secp256k1BaseY.SetByteSlice(Gy)

	order, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	secp256k1Order = saferith.ModulusFromBytes(order)
}

// Secp256k1 is the secp256k1 group, backed by decred's implementation.
type Secp256k1 struct{}

func (Secp256k1) NewPoint() Point {
	return new(Secp256k1Point)
}

func (Secp256k1) NewBasePoint() Point {
	out := new(Secp256k1Point)
	out.value.X.Set(&secp256k1BaseX)
	out.value.Y.Set(&secp256k1BaseY)
	out.value.Z.SetInt(1)
	return out
}

func (Secp256k1) NewScalar() Scalar {
	return new(Secp256k1Scalar)
}

func (Secp256k1) Name() string {
	return "secp256k1"
}

func (Secp256k1) ScalarBytes() int {
	return params.BytesScalar
}

func (Secp256k1) Order() *saferith.Modulus {
	return secp256k1Order
}

// LiftX recovers the unique point with an even y-coordinate from a 32-byte
// x-coordinate, by prefixing the even compressed-point tag before handing the
// encoding to the curve decoder.
//
// An error is returned when x is out of range, or does not correspond to a
// point on the curve.
func (Secp256k1) LiftX(xBytes []byte) (*Secp256k1Point, error) {
	if len(xBytes) != params.BytesScalar {
		return nil, fmt.Errorf("curve: invalid length for x coordinate: %d", len(xBytes))
	}
	buf := make([]byte, params.BytesPoint)
	buf[0] = secp256k1.PubKeyFormatCompressedEven
	copy(buf[1:], xBytes)
	p := new(Secp256k1Point)
	if err := p.UnmarshalBinary(buf); err != nil {
		return nil, err
	}
	return p, nil
}

// Secp256k1Scalar implements Scalar on secp256k1's scalar field.
type Secp256k1Scalar struct {
	value secp256k1.ModNScalar
}

func secp256k1CastScalar(generic Scalar) *Secp256k1Scalar {
	out, ok := generic.(*Secp256k1Scalar)
	if !ok {
		panic(fmt.Sprintf("failed to convert to Secp256k1Scalar: %v", generic))
	}
	return out
}

func (s *Secp256k1Scalar) MarshalBinary() ([]byte, error) {
	data := s.value.Bytes()
	return data[:], nil
}

func (s *Secp256k1Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesScalar {
		return fmt.Errorf("curve: invalid length for secp256k1 scalar: %d", len(data))
	}
	var exact [params.BytesScalar]byte
	copy(exact[:], data)
	if s.value.SetBytes(&exact) != 0 {
		return errors.New("curve: secp256k1 scalar was >= n")
	}
	return nil
}

func (s *Secp256k1Scalar) Add(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Add(&other.value)
	return s
}

func (s *Secp256k1Scalar) Sub(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	negated := new(secp256k1.ModNScalar).NegateVal(&other.value)
	s.value.Add(negated)
	return s
}

func (s *Secp256k1Scalar) Negate() Scalar {
	s.value.Negate()
	return s
}

func (s *Secp256k1Scalar) Mul(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Mul(&other.value)
	return s
}

func (s *Secp256k1Scalar) Invert() Scalar {
	s.value.InverseNonConst()
	return s
}

func (s *Secp256k1Scalar) Equal(that Scalar) bool {
	other := secp256k1CastScalar(that)

	return s.value.Equals(&other.value)
}

func (s *Secp256k1Scalar) IsZero() bool {
	return s.value.IsZero()
}

func (s *Secp256k1Scalar) Set(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Set(&other.value)
	return s
}

func (s *Secp256k1Scalar) SetNat(x *saferith.Nat) Scalar {
	reduced := new(saferith.Nat).Mod(x, secp256k1Order)
	if s.value.SetByteSlice(reduced.Bytes()) {
		panic("curve: setting a reduced Nat overflowed")
	}
	return s
}

func (s *Secp256k1Scalar) Act(that Point) Point {
	other := secp256k1CastPoint(that)
	out := new(Secp256k1Point)
	secp256k1.ScalarMultNonConst(&s.value, &other.value, &out.value)
	return out
}

func (s *Secp256k1Scalar) ActOnBase() Point {
	out := new(Secp256k1Point)
	secp256k1.ScalarBaseMultNonConst(&s.value, &out.value)
	return out
}

// Secp256k1Point implements Point on the secp256k1 group.
type Secp256k1Point struct {
	value secp256k1.JacobianPoint
}

func secp256k1CastPoint(generic Point) *Secp256k1Point {
	out, ok := generic.(*Secp256k1Point)
	if !ok {
		panic(fmt.Sprintf("failed to convert to Secp256k1Point: %v", generic))
	}
	return out
}

func (p *Secp256k1Point) MarshalBinary() ([]byte, error) {
	p.toAffine()
	if p.IsIdentity() {
		return nil, errors.New("curve: tried to marshal identity")
	}
	out := make([]byte, params.BytesPoint)
	// The parity tag matches Bitcoin's compressed encoding.
	out[0] = secp256k1.PubKeyFormatCompressedEven
	if p.value.Y.IsOdd() {
		out[0] = secp256k1.PubKeyFormatCompressedOdd
	}
	data := p.value.X.Bytes()
	copy(out[1:], data[:])
	return out, nil
}

func (p *Secp256k1Point) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesPoint {
		return fmt.Errorf("curve: invalid length for secp256k1 point: %d", len(data))
	}
	p.value.Z.SetInt(1)
	if p.value.X.SetByteSlice(data[1:]) {
		return errors.New("curve: secp256k1 point: x coordinate out of range")
	}
	odd := data[0] == secp256k1.PubKeyFormatCompressedOdd
	if !secp256k1.DecompressY(&p.value.X, odd, &p.value.Y) {
		return errors.New("curve: secp256k1 point: x coordinate not on curve")
	}
	// DecompressY may leave y denormalized after flipping its parity, and
	// parity and equality checks are only valid on normalized values.
	p.value.Y.Normalize()
	return nil
}

func (p *Secp256k1Point) Add(that Point) Point {
	other := secp256k1CastPoint(that)

	out := new(Secp256k1Point)
	secp256k1.AddNonConst(&p.value, &other.value, &out.value)
	return out
}

func (p *Secp256k1Point) Sub(that Point) Point {
	return secp256k1CastPoint(that.Negate()).Add(p)
}

func (p *Secp256k1Point) Negate() Point {
	out := new(Secp256k1Point)
	out.value.Set(&p.value)
	out.value.Y.Normalize()
	out.value.Y.Negate(1)
	out.value.Y.Normalize()
	return out
}

func (p *Secp256k1Point) Equal(that Point) bool {
	other := secp256k1CastPoint(that)

	p.toAffine()
	other.toAffine()
	return p.value.X.Equals(&other.value.X) &&
		p.value.Y.Equals(&other.value.Y) &&
		p.value.Z.Equals(&other.value.Z)
}

func (p *Secp256k1Point) IsIdentity() bool {
	return (p.value.X.IsZero() && p.value.Y.IsZero()) || p.value.Z.IsZero()
}

// HasEvenY reports whether the y-coordinate of p is even.
func (p *Secp256k1Point) HasEvenY() bool {
	p.toAffine()
	return !p.value.Y.IsOdd()
}

// XBytes returns the 32 bytes of the x-coordinate.
func (p *Secp256k1Point) XBytes() []byte {
	p.toAffine()
	data := p.value.X.Bytes()
	out := make([]byte, params.BytesScalar)
	copy(out, data[:])
	return out
}

func (p *Secp256k1Point) toAffine() {
	if !p.value.Z.IsOne() {
		p.value.ToAffine()
	}
}
