package keytesting

import (
	"math/rand"
	"testing"

	"github.com/forestrie/go-storagekey/hashers"
	"github.com/forestrie/go-storagekey/scale"
)

// ParamKinds lists every hasher that may be selected for a parameter.
var ParamKinds = []hashers.Kind{
	hashers.KindIdentity,
	hashers.KindConcat64,
	hashers.KindConcat128,
	hashers.KindBlake2b128,
	hashers.KindBlake2b256,
	hashers.KindTwox256,
}

type TestGenerator struct {
	T    *testing.T
	rand *rand.Rand
}

func NewTestGenerator(t *testing.T, seed int64) TestGenerator {
	return TestGenerator{T: t, rand: rand.New(rand.NewSource(seed))}
}

const nameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Name returns a random identifier of 0 to 24 characters.
func (g *TestGenerator) Name() string {
	n := g.rand.Intn(25)
	b := make([]byte, n)
	for i := range b {
		b[i] = nameAlphabet[g.rand.Intn(len(nameAlphabet))]
	}
	return string(b)
}

// Bytes returns up to maxLen random bytes, possibly none.
func (g *TestGenerator) Bytes(maxLen int) []byte {
	b := make([]byte, g.rand.Intn(maxLen+1))
	_, _ = g.rand.Read(b)
	return b
}

func (g *TestGenerator) ParamKind() hashers.Kind {
	return ParamKinds[g.rand.Intn(len(ParamKinds))]
}

// Scalar returns a random non option value.
func (g *TestGenerator) Scalar() scale.Value {
	switch g.rand.Intn(6) {
	case 0:
		return scale.U8(uint8(g.rand.Uint32()))
	case 1:
		return scale.U16(uint16(g.rand.Uint32()))
	case 2:
		return scale.U32(g.rand.Uint32())
	case 3:
		return scale.U64(g.rand.Uint64())
	case 4:
		return scale.Bool(g.rand.Intn(2) == 1)
	default:
		// Spread compact values over all of its modes.
		return scale.Compact(g.rand.Uint64() >> uint(g.rand.Intn(64)))
	}
}

// Value returns a random scalar, Some(scalar) or None.
func (g *TestGenerator) Value() scale.Value {
	v := g.Scalar()
	switch g.rand.Intn(3) {
	case 0:
		return scale.Some(v)
	case 1:
		return scale.None(v.Type())
	default:
		return v
	}
}
