package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", ASCII},
		{"ASCII", ASCII},
		{"us-ascii", ASCII},
		{"cp1252", Windows1252},
		{"Windows-1252", Windows1252},
		{"latin1", ISO88591},
		{"utf8", UTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name())
		})
	}

	_, err := Lookup("ebcdic")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownEncode))
}

func TestLookupSingleByte(t *testing.T) {
	for _, name := range []string{"", "ascii", "windows-1252", "latin1"} {
		c, err := LookupSingleByte(name)
		require.NoError(t, err, name)
		assert.Contains(t, SingleByte(), c.Name())
	}

	for _, name := range []string{"utf-8", "UTF8"} {
		_, err := LookupSingleByte(name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownEncode), name)
	}

	_, err := LookupSingleByte("ebcdic")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownEncode))
}

func TestASCIIIsStrict(t *testing.T) {
	c, err := Lookup(ASCII)
	require.NoError(t, err)

	out, err := c.Encode("VPU,\"27.50\"\x1cPickup V\r\n")
	require.NoError(t, err)
	assert.Equal(t, []byte("VPU,\"27.50\"\x1cPickup V\r\n"), out)

	_, err = c.Encode("Pickup µV")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))

	_, err = c.Decode([]byte{'A', 0xb5})
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))
}

func TestCharmapRoundTrip(t *testing.T) {
	c, err := Lookup(Windows1252)
	require.NoError(t, err)

	out, err := c.Encode("50°")
	require.NoError(t, err)
	assert.Equal(t, []byte{'5', '0', 0xb0}, out)

	back, err := c.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "50°", back)

	_, err = c.Encode("中")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))
}
