package pathlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty value", "", []string{}},
		{"single entry", `C:\A`, []string{`C:\A`}},
		{"empty segments dropped", `C:\A;;C:\B;`, []string{`C:\A`, `C:\B`}},
		{"only delimiters", ";;;", []string{}},
		{"whitespace kept", ` C:\A ;C:\B`, []string{` C:\A `, `C:\B`}},
		{"order kept", `Z;A;M`, []string{"Z", "A", "M"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestSerialize(t *testing.T) {
	assert.Equal(t, "", Serialize(nil))
	assert.Equal(t, `C:\A;C:\B`, Serialize([]string{`C:\A`, `C:\B`}))
}

func TestRoundTrip(t *testing.T) {
	clean := `C:\A;C:\B;D:\tools`
	assert.Equal(t, clean, Serialize(Parse(clean)))

	// Empty segments are a lossy normalization.
	assert.Equal(t, `C:\A;C:\B`, Serialize(Parse(`C:\A;;C:\B;`)))
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold(`C:\Foo`, `c:\foo`))
	assert.False(t, EqualFold(`C:\Foo`, `C:\Foo\`), "trailing separator is significant")
	assert.False(t, EqualFold(`C:\Foo`, `C:/Foo`), "separators are not normalized")
	assert.False(t, EqualFold("É", "é"), "only ASCII letters fold")
}

func TestKey(t *testing.T) {
	assert.Equal(t, `c:\program files\go`, Key(`C:\Program Files\Go`))
	assert.Equal(t, Key(`C:\FOO`), Key(`c:\foo`))
}
