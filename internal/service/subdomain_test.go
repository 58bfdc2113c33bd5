package service_test

import (
	"testing"

	"github.com/solware/solware-id/internal/service"
)

func TestExtractSubdomain(t *testing.T) {
	tests := []struct {
		host  string
		want  string
		found bool
	}{
		{"localhost", "", false},
		{"localhost:5173", "", false},
		{"192.168.0.1", "", false},
		{"192.168.0.1:8080", "", false},
		{"solware.agency", "", false},
		{"luis.solware.agency", "luis", true},
		{"LUIS.solware.agency", "luis", true},
		{"luis.solware.agency:443", "luis", true},
		{"luis.solware.agency.", "luis", true},
		{"a.b.c.d.example", "a", true},
		{"[::1]:8080", "", false},
		{".solware.agency", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := service.ExtractSubdomain(tt.host)
		if ok != tt.found || got != tt.want {
			t.Errorf("ExtractSubdomain(%q) = (%q, %v), want (%q, %v)", tt.host, got, ok, tt.want, tt.found)
		}
	}
}
