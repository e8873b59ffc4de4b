package digest

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/consensys/septic/babybear"
	"github.com/consensys/septic/fp7"
)

// Kind enumerates the tables that exchange interactions through the
// global argument. The numbering is part of the encoding: kind·2²⁴ is
// folded into the first message lane before lifting, so it must never
// change for serialized traces to stay comparable.
type Kind uint8

const (
	KindMemory Kind = iota + 1
	KindProgram
	KindInstruction
	KindAlu
	KindByte
	KindRange
	KindField
	KindSyscall
)

func (k Kind) String() string {
	switch k {
	case KindMemory:
		return "memory"
	case KindProgram:
		return "program"
	case KindInstruction:
		return "instruction"
	case KindAlu:
		return "alu"
	case KindByte:
		return "byte"
	case KindRange:
		return "range"
	case KindField:
		return "field"
	case KindSyscall:
		return "syscall"
	default:
		return "unknown"
	}
}

// Interaction is one message exchanged between two tables, packed into
// seven lanes together with its direction and originating table kind.
// The Memory and Syscall constructors enforce the lane layout; a hand
// built Interaction must keep every lane canonical and the first lane
// within 16 bits, or encoding would fold the offset and kind tags onto
// it.
type Interaction struct {
	Message fp7.Block[uint32]
	Receive bool
	Kind    Kind
}

var (
	// ErrUnknownKind reported when an interaction carries a kind outside
	// the enumerated tables.
	ErrUnknownKind = errors.New("unknown interaction kind")

	// ErrShardTooLarge reported when the shard lane exceeds 16 bits.
	ErrShardTooLarge = errors.New("shard lane exceeds 16 bits")

	// ErrLaneTooLarge reported when a message lane is not a canonical
	// field element.
	ErrLaneTooLarge = errors.New("message lane exceeds the field modulus")
)

// Memory packs a memory interaction: [shard, clk, addr, value bytes...].
// It panics if shard does not fit in 16 bits.
func Memory(shard, clk, addr, value uint32, receive bool) Interaction {
	if shard > math.MaxUint16 {
		panic("digest: memory shard exceeds 16 bits")
	}
	b0, b1, b2, b3 := leBytes(value)
	return Interaction{
		Message: fp7.Block[uint32]{shard, clk, addr, b0, b1, b2, b3},
		Receive: receive,
		Kind:    KindMemory,
	}
}

// Syscall packs a syscall interaction:
// [shard, clk low, clk high, syscall id, arg1, arg2, 0].
// It panics if shard does not fit in 16 bits, clk in 24 bits, or the
// syscall identifier in 8 bits.
func Syscall(shard, clk, syscallID, arg1, arg2 uint32, receive bool) Interaction {
	if shard > math.MaxUint16 {
		panic("digest: syscall shard exceeds 16 bits")
	}
	if clk >= 1<<24 {
		panic("digest: syscall clock exceeds 24 bits")
	}
	if syscallID > math.MaxUint8 {
		panic("digest: syscall identifier exceeds 8 bits")
	}
	return Interaction{
		Message: fp7.Block[uint32]{shard, clk & 0xffff, clk >> 16, syscallID, arg1, arg2, 0},
		Receive: receive,
		Kind:    KindSyscall,
	}
}

// validate checks the encoding preconditions Sum promises to catch
// instead of panicking on.
func (iv Interaction) validate() error {
	if iv.Kind < KindMemory || iv.Kind > KindSyscall {
		return ErrUnknownKind
	}
	if iv.Message[0] > math.MaxUint16 {
		return ErrShardTooLarge
	}
	for _, lane := range iv.Message {
		if lane >= babybear.Modulus {
			return ErrLaneTooLarge
		}
	}
	return nil
}

// leBytes splits a word into its four little-endian byte lanes.
func leBytes[T constraints.Unsigned](v T) (T, T, T, T) {
	return v & 0xff, v >> 8 & 0xff, v >> 16 & 0xff, v >> 24 & 0xff
}

// Word reassembles the value split across four byte lanes.
func Word(b0, b1, b2, b3 uint32) uint32 {
	return b0 | b1<<8 | b2<<16 | b3<<24
}
