package ndn_test

import (
	"testing"

	"github.com/named-data/ndnlite-go/ndn"
	"github.com/named-data/ndnlite-go/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameFromStringRoundTrip(t *testing.T) {
	n, err := ndn.NameFromString("/a/b/c")
	require.NoError(t, err)
	assert.Equal(t, 3, n.ComponentsSize)
	assert.Equal(t, "/a/b/c", n.String())
}

func TestNameFromStringRoot(t *testing.T) {
	n, err := ndn.NameFromString("/")
	require.NoError(t, err)
	assert.Equal(t, 0, n.ComponentsSize)
	assert.Equal(t, "/", n.String())
}

func TestNameFromStringTrailingSlashProducesNoEmptyComponent(t *testing.T) {
	n, err := ndn.NameFromString("/a/b/")
	require.NoError(t, err)
	assert.Equal(t, 2, n.ComponentsSize)
	assert.Equal(t, "/a/b", n.String())
}

func TestNameFromStringRequiresLeadingSlash(t *testing.T) {
	_, err := ndn.NameFromString("a/b")
	assert.ErrorIs(t, err, ndn.ErrNameInvalidFormat)
}

func TestNameEncodeDecodeRoundTrip(t *testing.T) {
	n, err := ndn.NameFromString("/hello/world")
	require.NoError(t, err)

	buf := make([]byte, 256)
	enc := tlv.NewEncoder(buf)
	require.NoError(t, n.Encode(enc))

	dec := tlv.NewDecoder(enc.Bytes())
	decoded, err := ndn.DecodeName(dec)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Compare(decoded))
}

func TestNameCompareIsBooleanNotOrdering(t *testing.T) {
	a, _ := ndn.NameFromString("/a/b")
	b, _ := ndn.NameFromString("/a/c")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))

	c, _ := ndn.NameFromString("/a/b")
	assert.Equal(t, 0, a.Compare(c))
}

func TestNameIsPrefixOf(t *testing.T) {
	prefix, _ := ndn.NameFromString("/a")
	full, _ := ndn.NameFromString("/a/b/c")
	other, _ := ndn.NameFromString("/x/y")

	assert.Equal(t, 0, prefix.IsPrefixOf(full))
	assert.Equal(t, 0, prefix.IsPrefixOf(prefix))
	assert.Equal(t, 1, full.IsPrefixOf(prefix))
	assert.Equal(t, 1, prefix.IsPrefixOf(other))
}

func TestNameAppendOversizeComponent(t *testing.T) {
	big := make([]byte, tlv.ComponentMaxSize+1)
	_, err := ndn.NewGenericComponent(big)
	assert.ErrorIs(t, err, tlv.ErrOversize)
}

func TestNameAppendBeyondCapacity(t *testing.T) {
	n := &ndn.Name{}
	var err error
	for i := 0; i < tlv.NameMaxComponents; i++ {
		err = n.AppendString("x")
		require.NoError(t, err)
	}
	err = n.AppendString("overflow")
	assert.ErrorIs(t, err, tlv.ErrOversize)
}

func TestNameInvalidate(t *testing.T) {
	n := &ndn.Name{}
	assert.False(t, n.IsInvalid())
	n.Invalidate()
	assert.True(t, n.IsInvalid())
}
