package gen

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Stats is a snapshot of the counters of a generator.
type Stats struct {
	// Name is the name given with WithName.
	Name string
	// State is the execution state at the time of the snapshot.
	State State
	// Yields is the number of values handed to the consumer.
	Yields uint64
	// Resumes is the number of times the procedure was entered by Next,
	// including the step that completed it.
	Resumes uint64
	// Canceled is true if the generator was closed before completing.
	Canceled bool
}

// Field numbers of the protobuf wire encoding of Stats.
const (
	statsName     protowire.Number = 1
	statsState    protowire.Number = 2
	statsYields   protowire.Number = 3
	statsResumes  protowire.Number = 4
	statsCanceled protowire.Number = 5
)

// MarshalAppend appends the protobuf wire encoding of s to b. Fields holding
// their zero value are omitted.
func (s Stats) MarshalAppend(b []byte) ([]byte, error) {
	if s.Name != "" {
		b = protowire.AppendTag(b, statsName, protowire.BytesType)
		b = protowire.AppendString(b, s.Name)
	}
	for _, f := range []struct {
		num   protowire.Number
		value uint64
	}{
		{statsState, uint64(s.State)},
		{statsYields, s.Yields},
		{statsResumes, s.Resumes},
		{statsCanceled, protowire.EncodeBool(s.Canceled)},
	} {
		if f.value == 0 {
			continue
		}
		b = protowire.AppendTag(b, f.num, protowire.VarintType)
		b = protowire.AppendVarint(b, f.value)
	}
	return b, nil
}

// Unmarshal decodes Stats from the provided buffer, returning the number of
// bytes that were read. Unknown fields are skipped.
func (s *Stats) Unmarshal(b []byte) (int, error) {
	*s = Stats{}

	n := 0
	for n < len(b) {
		num, typ, tn := protowire.ConsumeTag(b[n:])
		if tn < 0 {
			return 0, fmt.Errorf("invalid stats tag: %w", protowire.ParseError(tn))
		}
		n += tn

		switch {
		case num == statsName && typ == protowire.BytesType:
			v, vn := protowire.ConsumeString(b[n:])
			if vn < 0 {
				return 0, fmt.Errorf("invalid stats name: %w", protowire.ParseError(vn))
			}
			s.Name = v
			n += vn

		case num >= statsState && num <= statsCanceled && typ == protowire.VarintType:
			v, vn := protowire.ConsumeVarint(b[n:])
			if vn < 0 {
				return 0, fmt.Errorf("invalid stats field %d: %w", num, protowire.ParseError(vn))
			}
			n += vn

			switch num {
			case statsState:
				if v > uint64(Completed) {
					return 0, fmt.Errorf("invalid stats state: %d", v)
				}
				s.State = State(v)
			case statsYields:
				s.Yields = v
			case statsResumes:
				s.Resumes = v
			case statsCanceled:
				s.Canceled = protowire.DecodeBool(v)
			}

		default:
			vn := protowire.ConsumeFieldValue(num, typ, b[n:])
			if vn < 0 {
				return 0, fmt.Errorf("invalid stats field %d: %w", num, protowire.ParseError(vn))
			}
			n += vn
		}
	}
	return n, nil
}
