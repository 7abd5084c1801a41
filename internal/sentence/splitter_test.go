package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "whitespace only", text: "   \n\t ", want: nil},
		{name: "no terminator", text: "  hello world  ", want: []string{"hello world"}},
		{
			name: "mixed terminators",
			text: "Cats purr. Do dogs bark? Yes!",
			want: []string{"Cats purr.", "Do dogs bark?", "Yes!"},
		},
		{
			name: "trailing run without terminator",
			text: "First one. second one",
			want: []string{"First one.", "second one"},
		},
		{
			name: "abbreviations over-split",
			text: "Dr. Smith paid 3.50 today.",
			want: []string{"Dr.", "Smith paid 3.", "50 today."},
		},
		{
			name: "repeated terminators dropped",
			text: "Wow!! Really...",
			want: []string{"Wow!", "Really."},
		},
		{name: "terminators only", text: "...?!", want: nil},
		{
			name: "newlines inside sentence",
			text: "A line\nthat continues. Next.",
			want: []string{"A line\nthat continues.", "Next."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.text))
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "hello world.", Join([]string{"hello world"}))
	assert.Equal(t, "One. Two?. Three!.", Join([]string{" One. ", "Two?", "Three!"}))
}
