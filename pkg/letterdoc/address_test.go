package letterdoc

import (
	"strings"
	"testing"
)

func TestAddressLines(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want []string
	}{
		{
			name: "domestic full",
			addr: Address{
				Nickname:        "Main Office",
				PreAddress:      "Attn: Records",
				Street:          "100 Main St",
				AptSuiteFloor:   "Suite 200",
				City:            "Springfield",
				StateOrProvince: "IL",
				ZipCode:         "62701",
			},
			want: []string{
				"Main Office",
				"Attn: Records",
				"100 Main St Suite 200",
				"Springfield, IL 62701",
			},
		},
		{
			name: "domestic city only",
			addr: Address{
				Street: "100 Main St",
				City:   "Springfield",
			},
			want: []string{"100 Main St", "Springfield"},
		},
		{
			name: "domestic state and zip without city",
			addr: Address{
				Street:          "100 Main St",
				StateOrProvince: "IL",
				ZipCode:         "62701",
			},
			want: []string{"100 Main St", "IL 62701"},
		},
		{
			name: "foreign with country line",
			addr: Address{
				Street:          "12 High Street",
				City:            "Oxford",
				StateOrProvince: "Oxfordshire",
				ZipCode:         "OX1 2AB",
				Country:         "United Kingdom",
				ForeignAddress:  true,
			},
			want: []string{
				"12 High Street",
				"Oxford Oxfordshire OX1 2AB",
				"United Kingdom",
			},
		},
		{
			name: "empty",
			addr: Address{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.addr.Lines()
			if len(got) != len(tt.want) {
				t.Fatalf("Lines() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestContactLines(t *testing.T) {
	c := Contact{
		FirstName:  "Maria",
		MiddleName: "Luisa",
		LastName:   "Santos",
		InCareOf:   "John Doe",
		FirmName:   "Santos & Partners",
		Address: Address{
			Street:          "42 Elm St",
			City:            "Dayton",
			StateOrProvince: "OH",
			ZipCode:         "45402",
		},
	}

	got := c.String()
	want := strings.Join([]string{
		"Maria Luisa Santos",
		"C/O John Doe",
		"Santos & Partners",
		"42 Elm St",
		"Dayton, OH 45402",
	}, "\n")
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestContactFullNameSkipsEmptyParts(t *testing.T) {
	c := Contact{FirstName: "Maria", LastName: "Santos"}
	if got := c.FullName(); got != "Maria Santos" {
		t.Errorf("FullName() = %q, want %q", got, "Maria Santos")
	}
}
