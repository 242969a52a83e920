package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_String(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"null", Null(), ""},
		{"text", Text("R1"), "R1"},
		{"integral float", Float(101), "101"},
		{"fractional float", Float(27.5), "27.5"},
		{"negative float", Float(-3.25), "-3.25"},
		{"true", Boolean(true), "True"},
		{"false", Boolean(false), "False"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.String())
		})
	}
}

func TestCell_Truthy(t *testing.T) {
	assert.False(t, Null().Truthy())
	assert.False(t, Text("").Truthy())
	assert.True(t, Text("0").Truthy())
	assert.False(t, Float(0).Truthy())
	assert.True(t, Float(0.5).Truthy())
	assert.False(t, Boolean(false).Truthy())
	assert.True(t, Boolean(true).Truthy())
}

func TestCell_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want bool
	}{
		{"null equals null", Null(), Null(), true},
		{"null differs from empty text", Null(), Text(""), false},
		{"same text", Text("A"), Text("A"), true},
		{"different text", Text("A"), Text("B"), false},
		{"text never equals number", Text("1"), Float(1), false},
		{"same number", Float(2), Float(2), true},
		{"bool compares numerically", Boolean(true), Float(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestCell_Token(t *testing.T) {
	assert.Equal(t, "L2", Text(" L2.1 ").Token())
	assert.Equal(t, "2", Float(2).Token())
	assert.Equal(t, "2", Float(2.5).Token())
	assert.Equal(t, "", Null().Token())
}

func TestCell_MarshalJSON(t *testing.T) {
	bits := []WordBit{
		{Element: "RID", Value: Text("R1"), Group: Null(), Comment: "Relay Identifier"},
		{Element: "CTR", Value: Float(120), Group: Text("1")},
		{Element: "E50P", Value: Boolean(true), Group: Text("1")},
	}
	out, err := json.Marshal(bits)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"element":"RID","value":"R1","group":null,"comment":"Relay Identifier"},
		{"element":"CTR","value":120,"group":"1","comment":""},
		{"element":"E50P","value":true,"group":"1","comment":""}
	]`, string(out))
}
