package types

import (
	"errors"
	"os"
)

// ErrShortState is returned when a State is read past the end of
// its underlying data.
var ErrShortState = errors.New("types: state data too short")

// State represents a snapshot of the machine. It is used to save
// and load states between runs, and to compare runs with each other.
//
// Values are encoded little-endian in the order they are written.
// Reading past the end of the data does not panic, instead the read
// returns zero and Err reports ErrShortState.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error  // first error encountered while reading
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new, empty state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0, 64),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// Err returns the first error encountered while reading.
func (s *State) Err() error {
	return s.err
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) Write32(value uint32) {
	s.raw = append(s.raw, byte(value), byte(value>>8), byte(value>>16), byte(value>>24))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.Write8(1)
	} else {
		s.Write8(0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// next returns the next n bytes of the state, or nil if there
// are fewer than n bytes remaining.
func (s *State) next(n int) []byte {
	if s.err != nil || s.readPosition+n > len(s.raw) {
		s.err = ErrShortState
		return nil
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	b := s.next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (s *State) Read16() uint16 {
	b := s.next(2)
	if b == nil {
		return 0
	}
	return uint16(b[0]) | uint16(b[1])<<8
}

func (s *State) Read32() uint32 {
	b := s.next(4)
	if b == nil {
		return 0
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

func (s *State) ReadData(p []byte) {
	if b := s.next(len(p)); b != nil {
		copy(p, b)
	}
}

// SaveToFile writes the raw state to the named file.
func (s *State) SaveToFile(filename string) error {
	return os.WriteFile(filename, s.raw, 0644)
}

// Bytes returns the raw state data.
func (s *State) Bytes() []byte {
	return s.raw
}
