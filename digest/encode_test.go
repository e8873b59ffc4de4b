package digest_test

import (
	"testing"

	"github.com/consensys/septic/babybear"
	"github.com/consensys/septic/digest"
	"github.com/consensys/septic/fp7"
	"github.com/stretchr/testify/require"
)

func TestEncodeMemory(t *testing.T) {
	assert := require.New(t)

	e := digest.Memory(1, 0, 0, 0, true).Encode()
	assert.True(e.Point.IsOnCurve())
	assert.Equal(uint8(3), e.Offset)
	assert.Equal(
		fp7.FromCanonicalU32s([7]uint32{1188908938, 886426200, 1089067655, 5841233, 1584201361, 403593324, 737290563}),
		e.Point.X,
	)
	assert.Equal(
		fp7.FromCanonicalU32s([7]uint32{1484903310, 1729423255, 1202866932, 1798746528, 1891718773, 44616634, 804421780}),
		e.Point.Y,
	)
	assert.Equal(uint32(804421779), e.RangeValue)
	assert.Equal(uint32(2013265920), e.RangeCheckWitness().AsCanonicalU32())
}

func TestEncodeSendNegates(t *testing.T) {
	assert := require.New(t)

	recv := digest.Memory(1, 0, 0, 0, true).Encode()
	send := digest.Memory(1, 0, 0, 0, false).Encode()

	// same lift, mirrored y
	assert.Equal(recv.Offset, send.Offset)
	assert.True(send.Point.Equal(recv.Point.Neg()))
	assert.True(recv.Point.Y.IsReceive())
	assert.True(send.Point.Y.IsSend())

	assert.Equal(uint32(202211180), send.RangeValue)
	assert.Equal(uint32(1006632960), send.RangeCheckWitness().AsCanonicalU32())

	// a send and its matching receive cancel
	assert.True(recv.Point.Add(send.Point).IsInfinity())
}

func TestEncodeMemoryWideLanes(t *testing.T) {
	assert := require.New(t)

	e := digest.Memory(2, 447, 1<<20, 0xDEADBEEF, true).Encode()
	assert.Equal(uint8(0), e.Offset)
	assert.Equal(
		fp7.FromCanonicalU32s([7]uint32{1427941, 1404712841, 1888681000, 1533321794, 238413832, 486804722, 1053892279}),
		e.Point.X,
	)
	assert.Equal(
		fp7.FromCanonicalU32s([7]uint32{938010521, 1966563034, 319199842, 93325204, 633139010, 1088934968, 134503092}),
		e.Point.Y,
	)
	assert.Equal(uint32(134503091), e.RangeValue)
}

func TestEncodeSyscall(t *testing.T) {
	assert := require.New(t)

	e := digest.Syscall(3, 0x123456, 85, 7, 9, false).Encode()
	assert.True(e.Point.IsOnCurve())
	assert.Equal(uint8(2), e.Offset)
	assert.Equal(
		fp7.FromCanonicalU32s([7]uint32{1274557313, 1544457291, 1952329542, 1949186812, 1946328192, 1645160813, 231493316}),
		e.Point.X,
	)
	assert.Equal(
		fp7.FromCanonicalU32s([7]uint32{228110961, 1801597504, 1314740440, 316699700, 327654711, 1004305677, 1451571275}),
		e.Point.Y,
	)
	assert.Equal(uint32(444938314), e.RangeValue)
}

func TestEncodeDeterministic(t *testing.T) {
	assert := require.New(t)

	iv := digest.Syscall(7, 1234, 99, 11, 22, true)
	first := iv.Encode()
	second := iv.Encode()
	assert.Equal(first, second)

	// kinds with identical lanes encode to different points
	a := digest.Interaction{Message: fp7.Block[uint32]{1, 2, 3, 4, 5, 6, 7}, Receive: true, Kind: digest.KindMemory}
	b := digest.Interaction{Message: fp7.Block[uint32]{1, 2, 3, 4, 5, 6, 7}, Receive: true, Kind: digest.KindSyscall}
	assert.False(a.Encode().Point.Equal(b.Encode().Point))
}

func TestRangeValueBounds(t *testing.T) {
	for i := uint32(0); i < 32; i++ {
		for _, receive := range []bool{true, false} {
			e := digest.Memory(i, i*31, i*57, i*0x01010101, receive).Encode()
			require.Less(t, e.RangeValue, uint32(1<<30-1<<26), "event %d receive=%v", i, receive)
			require.False(t, e.RangeCheckWitness().IsZero())
		}
	}
}

func TestEncodeAll(t *testing.T) {
	assert := require.New(t)

	interactions := make([]digest.Interaction, 50)
	for i := range interactions {
		if i%2 == 0 {
			interactions[i] = digest.Memory(uint32(i), uint32(3*i), uint32(5*i), uint32(i*i), i%4 == 0)
		} else {
			interactions[i] = digest.Syscall(uint32(i), uint32(i), uint32(i%256), uint32(i), uint32(2*i), i%3 == 0)
		}
	}

	encoded := digest.EncodeAll(interactions)
	assert.Len(encoded, len(interactions))
	for i := range interactions {
		assert.Equal(interactions[i].Encode(), encoded[i], "interaction %d", i)
	}

	assert.Empty(digest.EncodeAll(nil))
}

func TestRangeCheckWitnessInverts(t *testing.T) {
	for _, rangeValue := range []uint32{0, 1, 1 << 26, 1<<27 | 1<<26, 1<<29 | 1<<28 | 1<<26, 1<<30 - 1<<26 - 1} {
		e := digest.Encoded{RangeValue: rangeValue}
		w := e.RangeCheckWitness()

		bitSum := rangeValue>>26&1 + rangeValue>>27&1 + rangeValue>>28&1 + rangeValue>>29&1
		diff := babybear.FromCanonicalU32(bitSum).Sub(babybear.FromCanonicalU32(4))
		require.True(t, diff.Mul(w).IsOne(), "range value %#x", rangeValue)
	}
}
