package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFixedWidth(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		typ      Type
		want     uint64
		consumed int
	}{
		{"u8", []byte{5}, TypeU8, 5, 1},
		{"u8 0x45", []byte{0x45}, TypeU8, 69, 1},
		{"u16", []byte{0x2a, 0x00}, TypeU16, 42, 2},
		{"u32 one", []byte{1, 0, 0, 0}, TypeU32, 1, 4},
		{"u32 le", []byte{0x01, 0x02, 0x03, 0x04}, TypeU32, 0x04030201, 4},
		{"u64", []byte{0xff, 0, 0, 0, 0, 0, 0, 0x80}, TypeU64, 0x80000000000000ff, 8},
		{"u32 leaves trailing", []byte{1, 0, 0, 0, 9}, TypeU32, 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, n, err := Decode(tt.data, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.consumed, n)
			got, ok := v.Uint()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.True(t, v.Type().Equal(tt.typ))
		})
	}
}

func TestDecodeU8Expectation(t *testing.T) {
	got, err := DecodeU8([]byte{5})
	require.NoError(t, err)
	assert.Equal(t, uint8(5), got)

	_, err = DecodeU8([]byte{})
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestDecodeTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		typ  Type
	}{
		{"u8 empty", nil, TypeU8},
		{"bool empty", nil, TypeBool},
		{"u16 one byte", []byte{1}, TypeU16},
		{"u32 three bytes", []byte{1, 2, 3}, TypeU32},
		{"u64 seven bytes", []byte{1, 2, 3, 4, 5, 6, 7}, TypeU64},
		{"option empty", nil, OptionOf(TypeU32)},
		{"option some no payload", []byte{1}, OptionOf(TypeU32)},
		{"option some short payload", []byte{1, 1, 0}, OptionOf(TypeU32)},
		{"option bool some no payload", []byte{1}, OptionOf(TypeBool)},
		{"compact two byte mode", []byte{0x01}, TypeCompact},
		{"compact four byte mode", []byte{0x02, 0, 1}, TypeCompact},
		{"compact big mode", []byte{0x03, 0, 0, 0}, TypeCompact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n, err := Decode(tt.data, tt.typ)
			require.ErrorIs(t, err, ErrTruncatedInput)
			assert.Zero(t, n)
		})
	}
}

func TestDecodeBool(t *testing.T) {
	got, err := DecodeBool([]byte{0})
	require.NoError(t, err)
	assert.False(t, got)

	got, err = DecodeBool([]byte{1})
	require.NoError(t, err)
	assert.True(t, got)

	for _, b := range []byte{2, 0x45, 0xff} {
		_, err = DecodeBool([]byte{b})
		assert.ErrorIs(t, err, ErrInvalidBooleanDiscriminant, "byte 0x%02x", b)
	}
}

func TestDecodeFullConsumption(t *testing.T) {
	_, err := DecodeU32([]byte{1, 0, 0, 0, 0}, WithFullConsumption())
	assert.ErrorIs(t, err, ErrTrailingBytes)

	got, err := DecodeU32([]byte{1, 0, 0, 0}, WithFullConsumption())
	require.NoError(t, err)
	assert.Equal(t, uint32(1), got)

	// Without the assertion the trailing byte is simply not consumed.
	got, err = DecodeU32([]byte{1, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), got)
}

func TestDecodeOptionU32(t *testing.T) {
	got, ok, err := DecodeOptionU32([]byte{1, 1, 0, 0, 0})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(1), got)

	_, ok, err = DecodeOptionU32([]byte{0})
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = DecodeOptionU32([]byte{0, 0, 0, 0})
	require.NoError(t, err)
	assert.False(t, ok, "None consumes only the discriminant")

	_, _, err = DecodeOptionU32([]byte{0, 0, 0, 0}, WithFullConsumption())
	assert.ErrorIs(t, err, ErrTrailingBytes)

	_, _, err = DecodeOptionU32([]byte{2, 1, 0, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidOptionDiscriminant)
}

// The strict scheme is the default: one discriminant byte and one boolean byte.
func TestDecodeOptionBoolStrict(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantSome bool
		want     bool
		wantErr  error
	}{
		{name: "none", data: []byte{0}},
		{name: "some true", data: []byte{1, 1}, wantSome: true, want: true},
		{name: "some false", data: []byte{1, 0}, wantSome: true, want: false},
		{name: "discriminant alone", data: []byte{1}, wantErr: ErrTruncatedInput},
		{name: "compact some false", data: []byte{2}, wantErr: ErrAmbiguousOptionEncoding},
		{name: "bad inner", data: []byte{1, 2}, wantErr: ErrInvalidBooleanDiscriminant},
		{name: "bad discriminant", data: []byte{3}, wantErr: ErrInvalidOptionDiscriminant},
		{name: "empty", data: nil, wantErr: ErrTruncatedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, some, err := DecodeOptionBool(tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSome, some)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeOptionBoolCompact(t *testing.T) {
	compact := WithOptionBoolScheme(OptionBoolCompact)

	tests := []struct {
		name     string
		data     []byte
		opts     []Option
		wantSome bool
		want     bool
		wantErr  error
	}{
		{name: "none", data: []byte{0}, opts: []Option{compact}},
		{name: "some true", data: []byte{1}, opts: []Option{compact}, wantSome: true, want: true},
		{name: "some false", data: []byte{2}, opts: []Option{compact}, wantSome: true, want: false},
		{name: "bad discriminant", data: []byte{3}, opts: []Option{compact}, wantErr: ErrInvalidOptionDiscriminant},
		{
			name: "strict some true is not also accepted",
			data: []byte{1, 1}, opts: []Option{compact, WithFullConsumption()},
			wantErr: ErrTrailingBytes,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, some, err := DecodeOptionBool(tt.data, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSome, some)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRejectsNestedOption(t *testing.T) {
	nested := OptionOf(OptionOf(TypeBool))
	_, _, err := Decode([]byte{1, 1, 1}, nested)
	assert.ErrorIs(t, err, ErrNestedOption)

	_, _, err = Decode([]byte{0}, Type{Kind: KindOption})
	assert.ErrorIs(t, err, ErrUnknownType)

	_, _, err = Decode([]byte{0}, Type{})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestDecodeOptionOtherElems(t *testing.T) {
	v, n, err := Decode([]byte{1, 0x2a, 0x00}, OptionOf(TypeU16))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, v.Equal(Some(U16(42))))

	v, n, err = Decode([]byte{1, 0x04}, OptionOf(TypeCompact))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, v.Equal(Some(Compact(1))))

	v, n, err = Decode([]byte{0}, OptionOf(TypeU64))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, v.IsNone())
	assert.True(t, v.Equal(None(TypeU64)))
	assert.False(t, v.Equal(None(TypeU32)))
}
