package gen

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestStatsSerialization(t *testing.T) {
	for _, original := range []Stats{
		{},
		{Name: "generator"},
		{Name: "counter", State: Suspended, Yields: 3, Resumes: 3},
		{Name: "counter", State: Completed, Yields: 1 << 40, Resumes: 1<<40 + 1, Canceled: true},
	} {
		t.Run(original.Name, func(t *testing.T) {
			b, err := original.MarshalAppend(nil)
			if err != nil {
				t.Fatal(err)
			}

			var reconstructed Stats
			if n, err := reconstructed.Unmarshal(b); err != nil {
				t.Fatal(err)
			} else if n != len(b) {
				t.Errorf("not all bytes were consumed when reconstructing the stats: got %d, expected %d", n, len(b))
			}
			if diff := cmp.Diff(original, reconstructed); diff != "" {
				t.Errorf("unexpected stats (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStatsUnmarshalUnknownFields(t *testing.T) {
	b := protowire.AppendTag(nil, 42, protowire.BytesType)
	b = protowire.AppendString(b, "ignored")
	b, _ = Stats{Name: "g", Yields: 7}.MarshalAppend(b)
	b = protowire.AppendTag(b, 43, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 1)

	var s Stats
	if _, err := s.Unmarshal(b); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Stats{Name: "g", Yields: 7}, s); diff != "" {
		t.Errorf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestStatsUnmarshalErrors(t *testing.T) {
	valid, _ := Stats{Name: "counter", Yields: 300}.MarshalAppend(nil)

	for _, test := range []struct {
		name  string
		input []byte
	}{
		{"truncated", valid[:len(valid)-1]},
		{"bad tag", []byte{0x80}},
		{"bad state", protowire.AppendVarint(protowire.AppendTag(nil, statsState, protowire.VarintType), 9)},
	} {
		t.Run(test.name, func(t *testing.T) {
			var s Stats
			if _, err := s.Unmarshal(test.input); err == nil {
				t.Error("expected an error")
			}
		})
	}

	var s Stats
	_, err := s.Unmarshal([]byte{0x80})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error does not wrap the wire parse error: %v", err)
	}
}
