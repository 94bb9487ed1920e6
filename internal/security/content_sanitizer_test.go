package security

import "testing"

// TestContentSanitizer_Sanitize はHTMLタグの除去を検証する。
func TestContentSanitizer_Sanitize(t *testing.T) {
	s := NewContentSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "door to door canvassing", want: "door to door canvassing"},
		{name: "empty", input: "", want: ""},
		{name: "script tag", input: `<script>alert("x")</script>hello`, want: "hello"},
		{name: "img onerror", input: `<img src=x onerror=alert(1)>hello`, want: "hello"},
		{name: "nested tags", input: "<div><b>bold</b> text</div>", want: "bold text"},
		{name: "anchor", input: `<a href="https://example.com">link</a>`, want: "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestContentSanitizer_Idempotent は同一入力に対して常に同一出力を返すことを検証する。
func TestContentSanitizer_Idempotent(t *testing.T) {
	s := NewContentSanitizer()

	input := `<p>meet at <b>noon</b></p>`
	first := s.Sanitize(input)
	second := s.Sanitize(first)
	if first != second {
		t.Errorf("Sanitize is not idempotent: %q -> %q", first, second)
	}
}
