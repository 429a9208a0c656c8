package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimAndReleasePort(t *testing.T) {
	c := newCoreConstraint(TileLoc{Col: 0, Row: 2}, TileCompute)

	assert.True(t, portAvailable(c, North, Slave, 0))
	assert.Equal(t, 0, firstSetBit(c.SlaveBits[North]))

	claimPort(c, North, Slave, 0)
	assert.False(t, portAvailable(c, North, Slave, 0))

	releasePort(c, North, Slave, 0)
	assert.True(t, portAvailable(c, North, Slave, 0))
}

func TestFirstSetBitOnEmptyByte(t *testing.T) {
	assert.Equal(t, noPort, firstSetBit(0))
}

func TestFindFreeBD(t *testing.T) {
	c := newCoreConstraint(TileLoc{Col: 0, Row: 2}, TileCompute)
	assert.Equal(t, 16, c.BDWidth)

	seen := map[int]bool{}
	for i := 0; i < c.BDWidth; i++ {
		idx := findFreeBD(c)
		assert.GreaterOrEqual(t, idx, 0)
		assert.False(t, seen[idx], "findFreeBD must not return the same slot twice before release")
		seen[idx] = true
	}

	assert.Equal(t, noPort, findFreeBD(c), "every BD slot is claimed, none should remain")

	releaseBD(c, 3)
	assert.Equal(t, 3, findFreeBD(c))
}

func TestMM2SAndS2MMClaim(t *testing.T) {
	c := newCoreConstraint(TileLoc{Col: 0, Row: 2}, TileCompute)

	idx := firstSetBit(c.MM2SState)
	assert.True(t, mm2sAvailable(c, idx))
	claimMM2S(c, idx)
	assert.False(t, mm2sAvailable(c, idx))
	releaseMM2S(c, idx)
	assert.True(t, mm2sAvailable(c, idx))

	idx = firstSetBit(c.S2MMState)
	assert.True(t, s2mmAvailable(c, idx))
	claimS2MM(c, idx)
	assert.False(t, s2mmAvailable(c, idx))
	releaseS2MM(c, idx)
	assert.True(t, s2mmAvailable(c, idx))
}
