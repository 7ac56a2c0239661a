package util

import "testing"

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`["a"]`, `["a"]`},
		{"```json\n[\"a\"]\n```", `["a"]`},
		{"```\n[\"a\"]\n```", `["a"]`},
		{"  ```json\n{\"x\":1}\n```  ", `{"x":1}`},
		{"plain text", "plain text"},
	}
	for _, tc := range cases {
		if got := StripCodeFences(tc.in); got != tc.want {
			t.Errorf("StripCodeFences(%q): want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestSniffMimeHTTP(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	if got := SniffMimeHTTP(jpeg); got != "image/jpeg" {
		t.Errorf("jpeg: got=%q", got)
	}
	if got := SniffMimeHTTP(png); got != "image/png" {
		t.Errorf("png: got=%q", got)
	}
	if got := SniffMimeHTTP([]byte("hello")); got != "application/octet-stream" {
		t.Errorf("unknown: got=%q", got)
	}
}
