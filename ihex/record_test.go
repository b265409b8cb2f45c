package ihex

import (
	"strings"
	"testing"
)

func TestRecordTypeString(t *testing.T) {
	tests := []struct {
		typ  RecordType
		want string
	}{
		{TypeData, "data"},
		{TypeEndOfFile, "end of file"},
		{TypeExtendedSegmentAddress, "extended segment address"},
		{TypeStartSegmentAddress, "start segment address"},
		{TypeExtendedLinearAddress, "extended linear address"},
		{TypeStartLinearAddress, "start linear address"},
		{RecordType(0x42), "unknown (0x42)"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("RecordType(0x%02X).String() = %q, want %q", byte(tt.typ), got, tt.want)
		}
	}
}

func TestExtendedAddress(t *testing.T) {
	rec := Record{Type: TypeExtendedLinearAddress, Data: []byte{0x08, 0x00}}
	if got := rec.ExtendedAddress(); got != 0x0800 {
		t.Errorf("ExtendedAddress() = 0x%04X, want 0x0800", got)
	}

	rec = Record{Type: TypeExtendedSegmentAddress, Data: []byte{0x10, 0x00}}
	if got := rec.ExtendedAddress(); got != 0x1000 {
		t.Errorf("ExtendedAddress() = 0x%04X, want 0x1000", got)
	}

	// Other record types decode to 0 regardless of payload.
	rec = Record{Type: TypeData, Data: []byte{0xAA, 0xBB}}
	if got := rec.ExtendedAddress(); got != 0 {
		t.Errorf("ExtendedAddress() on a data record = 0x%04X, want 0", got)
	}
}

func TestRecordString(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "data",
			rec:  Record{Type: TypeData, Offset: 0x0010, Data: []byte{0xDE, 0xAD}},
			want: "offset=0x0010",
		},
		{
			name: "extended linear",
			rec:  Record{Type: TypeExtendedLinearAddress, Data: []byte{0x00, 0x01}},
			want: "extended linear address: 0x0001",
		},
		{
			name: "end of file",
			rec:  Record{Type: TypeEndOfFile},
			want: "end of file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want substring %q", got, tt.want)
			}
		})
	}
}
