package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name    string
		want    Type
		wantErr error
	}{
		{"u8", TypeU8, nil},
		{"U16", TypeU16, nil},
		{" u32 ", TypeU32, nil},
		{"u64", TypeU64, nil},
		{"bool", TypeBool, nil},
		{"compact", TypeCompact, nil},
		{"Compact<u64>", TypeCompact, nil},
		{"Option<u32>", OptionOf(TypeU32), nil},
		{"option<bool>", OptionOf(TypeBool), nil},
		{"Option<Option<bool>>", Type{}, ErrNestedOption},
		{"Option<>", Type{}, ErrUnknownType},
		{"u128", Type{}, ErrUnknownType},
		{"Vec<u8>", Type{}, ErrUnknownType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.name)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Option<u32>", OptionOf(TypeU32).String())
	assert.Equal(t, "compact", TypeCompact.String())
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		typ     Type
		text    string
		want    Value
		wantErr error
	}{
		{TypeU8, "5", U8(5), nil},
		{TypeU8, "0xff", U8(255), nil},
		{TypeU8, "256", Value{}, ErrValueRange},
		{TypeU16, "42", U16(42), nil},
		{TypeU32, "1", U32(1), nil},
		{TypeU32, "-1", Value{}, ErrInvalidText},
		{TypeU64, "18446744073709551615", U64(^uint64(0)), nil},
		{TypeU64, "18446744073709551616", Value{}, ErrValueRange},
		{TypeCompact, "2", Compact(2), nil},
		{TypeBool, "true", Bool(true), nil},
		{TypeBool, "yes", Value{}, ErrInvalidText},
		{OptionOf(TypeU32), "none", None(TypeU32), nil},
		{OptionOf(TypeU32), "7", Some(U32(7)), nil},
		{OptionOf(TypeBool), "false", Some(Bool(false)), nil},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.text, func(t *testing.T) {
			got, err := ParseValue(tt.typ, tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseOptionBoolScheme(t *testing.T) {
	s, err := ParseOptionBoolScheme("compact")
	require.NoError(t, err)
	assert.Equal(t, OptionBoolCompact, s)

	s, err = ParseOptionBoolScheme("")
	require.NoError(t, err)
	assert.Equal(t, OptionBoolStrict, s)

	_, err = ParseOptionBoolScheme("both")
	assert.Error(t, err)
}

func TestValueAccessors(t *testing.T) {
	n, ok := U32(9).Uint()
	assert.True(t, ok)
	assert.Equal(t, uint64(9), n)

	_, ok = Bool(true).Uint()
	assert.False(t, ok)

	b, ok := Bool(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	elem, ok := Some(U8(3)).Elem()
	require.True(t, ok)
	assert.True(t, elem.Equal(U8(3)))

	_, ok = None(TypeU8).Elem()
	assert.False(t, ok)

	assert.Equal(t, "Some(true)", Some(Bool(true)).String())
	assert.Equal(t, "None", None(TypeBool).String())
	assert.False(t, U8(1).Equal(U16(1)))
}
