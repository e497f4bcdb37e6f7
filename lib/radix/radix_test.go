// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package radix

import "testing"

// msgpackBool is the MessagePack encoding of {"bool":true}, the
// reference payload used across the render tests.
var msgpackBool = []byte{0x81, 0xA4, 0x62, 0x6F, 0x6F, 0x6C, 0xC3}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Radix
	}{
		{"b", Binary}, {"bin", Binary}, {"binary", Binary}, {"BINARY", Binary},
		{"d", Decimal}, {"dec", Decimal}, {"Decimal", Decimal},
		{"h", Hexadecimal}, {"hex", Hexadecimal}, {"HEX", Hexadecimal}, {"hexadecimal", Hexadecimal},
		{"o", Octal}, {"oct", Octal}, {"Octal", Octal},
	}
	for _, test := range tests {
		got, err := Parse(test.name)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q): got %v, want %v", test.name, got, test.want)
		}
	}

	if _, err := Parse("base64"); err == nil {
		t.Error("Parse(\"base64\"): expected error, got none")
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		radix Radix
		want  string
	}{
		{Hexadecimal, "81 A4 62 6F 6F 6C C3 "},
		{Decimal, "129 164 98 111 111 108 195 "},
		{Binary, "10000001 10100100 1100010 1101111 1101111 1101100 11000011 "},
		{Octal, "201 244 142 157 157 154 303 "},
	}
	for _, test := range tests {
		got := string(test.radix.Render(msgpackBool))
		if got != test.want {
			t.Errorf("%v.Render: got %q, want %q", test.radix, got, test.want)
		}
	}
}

func TestRenderHexZeroPadding(t *testing.T) {
	t.Parallel()

	got := string(Hexadecimal.Render([]byte{0x00, 0x00, 0x00, 0x17}))
	if got != "00 00 00 17 " {
		t.Errorf("hex render of length prefix: got %q, want %q", got, "00 00 00 17 ")
	}
}

func TestRenderNoneIsIdentity(t *testing.T) {
	t.Parallel()

	got := None.Render(msgpackBool)
	if &got[0] != &msgpackBool[0] || len(got) != len(msgpackBool) {
		t.Error("None.Render should return the input unchanged")
	}
}
