package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/bytesref/internal/rawmem"
)

func TestSmallWriteAndPayload(t *testing.T) {
	payload := make([]byte, 200)
	for i := range payload {
		payload[i] = 4
	}

	base, err := rawmem.Alloc(SmallAllocSize(len(payload)))
	require.NoError(t, err)
	defer rawmem.Free(base, SmallAllocSize(len(payload)))

	trailer := SmallWrite(base, payload)
	assert.Equal(t, len(payload), SmallLength(trailer))
	assert.Equal(t, payload, SmallPayload(trailer))
	assert.Equal(t, uint32(1), SmallRefcountLoad(trailer))
}

func TestSmallRefcountIncrementAndRelease(t *testing.T) {
	base, err := rawmem.Alloc(SmallAllocSize(8))
	require.NoError(t, err)
	defer rawmem.Free(base, SmallAllocSize(8))

	trailer := SmallWrite(base, []byte("12345678"))

	ok := SmallTryIncrement(trailer)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), SmallRefcountLoad(trailer))

	assert.False(t, SmallRelease(trailer))
	assert.True(t, SmallRelease(trailer))
}

func TestSmallTryIncrementSaturates(t *testing.T) {
	base, err := rawmem.Alloc(SmallAllocSize(8))
	require.NoError(t, err)
	defer rawmem.Free(base, SmallAllocSize(8))

	trailer := SmallWrite(base, []byte("12345678"))
	for i := uint32(1); i < MaxSmallRefcount; i++ {
		require.True(t, SmallTryIncrement(trailer))
	}

	assert.Equal(t, uint32(MaxSmallRefcount), SmallRefcountLoad(trailer))
	assert.False(t, SmallTryIncrement(trailer))
	assert.Equal(t, uint32(MaxSmallRefcount), SmallRefcountLoad(trailer))
}

func TestSmallPaddedLen(t *testing.T) {
	assert.Equal(t, 8, SmallPaddedLen(8))
	assert.Equal(t, 16, SmallPaddedLen(9))
	assert.Equal(t, 256, SmallPaddedLen(255))
}
