package argparse

import "testing"

func TestCheckType(t *testing.T) {
	tests := []struct {
		typeName string
		value    string
		want     bool
	}{
		{"alnum", "abc123", true},
		{"alnum", "abc 123", false},
		{"alpha", "abc", true},
		{"alpha", "abc1", false},
		{"ascii", "hello", true},
		{"ascii", "héllo", false},
		{"boolean", "1", true},
		{"boolean", "tr", true},
		{"boolean", "off", true},
		{"boolean", "maybe", false},
		{"control", "\t\n", true},
		{"control", "a", false},
		{"dict", "k1 v1 k2 v2", true},
		{"dict", "k1 v1 k2", false},
		{"digit", "0123", true},
		{"digit", "12a", false},
		{"double", "3.14", true},
		{"double", " 2e10 ", true},
		{"double", "pi", false},
		{"graph", "abc!", true},
		{"graph", "a b", false},
		{"integer", "42", true},
		{"integer", "0x1f", true},
		{"integer", "99999999999999", false},
		{"wideinteger", "99999999999999", true},
		{"wideinteger", "x", false},
		{"list", "anything at all", true},
		{"lower", "abc", true},
		{"lower", "Abc", false},
		{"print", "abc def", true},
		{"print", "a\x01b", false},
		{"punct", ".,!", true},
		{"punct", "a.", false},
		{"space", " \t", true},
		{"space", "a ", false},
		{"upper", "ABC", true},
		{"upper", "AbC", false},
		{"wordchar", "foo_bar9", true},
		{"wordchar", "foo-bar", false},
		{"xdigit", "DEADbeef01", true},
		{"xdigit", "xyz", false},
	}
	for _, tt := range tests {
		if got := checkType(tt.typeName, tt.value); got != tt.want {
			t.Errorf("checkType(%q, %q) = %v, want %v", tt.typeName, tt.value, got, tt.want)
		}
	}
}

func TestCheckTypeEmptyValue(t *testing.T) {
	for _, typeName := range allowedTypes {
		if !checkType(typeName, "") {
			t.Errorf("checkType(%q, \"\") = false, want true", typeName)
		}
	}
}
