package switcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pathswitch/internal/pathlist"
)

func TestActivate(t *testing.T) {
	tests := []struct {
		name    string
		current string
		managed []string
		target  string
		want    string
	}{
		{
			name:    "replaces every managed entry",
			current: `C:\Old1;C:\Other;C:\Old2`,
			managed: []string{`C:\Old1`, `C:\Old2`},
			target:  `C:\New`,
			want:    `C:\New;C:\Other`,
		},
		{
			name:    "empty path value",
			current: "",
			managed: []string{`C:\Py311`},
			target:  `C:\Py311`,
			want:    `C:\Py311`,
		},
		{
			name:    "case-insensitive removal",
			current: `c:\foo;C:\Bar;C:\FOO`,
			managed: []string{`C:\Foo`},
			target:  `C:\Foo`,
			want:    `C:\Foo;C:\Bar`,
		},
		{
			name:    "target already first",
			current: `C:\Py312;C:\Windows`,
			managed: []string{`C:\Py311`, `C:\Py312`},
			target:  `C:\Py312`,
			want:    `C:\Py312;C:\Windows`,
		},
		{
			name:    "trailing separator is a different path",
			current: `C:\Py311\;C:\Windows`,
			managed: []string{`C:\Py311`},
			target:  `C:\Py311`,
			want:    `C:\Py311;C:\Py311\;C:\Windows`,
		},
		{
			name:    "unmanaged copy of target is kept",
			current: `C:\Windows;C:\Shared`,
			managed: []string{`C:\Py311`},
			target:  `C:\Shared`,
			want:    `C:\Shared;C:\Windows;C:\Shared`,
		},
		{
			name:    "empty group",
			current: `C:\A;C:\B`,
			managed: nil,
			target:  `C:\X`,
			want:    `C:\X;C:\A;C:\B`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Activate(pathlist.Parse(tt.current), tt.managed, tt.target)
			assert.Equal(t, tt.want, pathlist.Serialize(got))
		})
	}
}

func TestActivate_Properties(t *testing.T) {
	lists := []string{
		"",
		`C:\A;C:\B;C:\A`,
		`C:\Py311;C:\Windows;c:\py312;D:\bin`,
		`C:\Py312;C:\Py311;C:\Py313`,
	}
	managed := []string{`C:\Py311`, `C:\Py312`, `C:\Py313`}

	for _, raw := range lists {
		for _, target := range managed {
			once := Activate(pathlist.Parse(raw), managed, target)

			assert.Equal(t, target, once[0])
			for _, p := range once[1:] {
				for _, m := range managed {
					assert.False(t, pathlist.EqualFold(p, m), "%q still contains managed %q", once, m)
				}
			}

			twice := Activate(once, managed, target)
			assert.Equal(t, once, twice, "activation is idempotent")
		}
	}
}

func TestActivate_DoesNotModifyInput(t *testing.T) {
	current := []string{`C:\Old`, `C:\Other`}
	Activate(current, []string{`C:\Old`}, `C:\New`)
	assert.Equal(t, []string{`C:\Old`, `C:\Other`}, current)
}

func TestIsActive(t *testing.T) {
	current := pathlist.Parse(`C:\Windows;C:\Python312`)

	assert.True(t, IsActive(current, `c:\python312`))
	assert.False(t, IsActive(current, `C:\Python311`))
	assert.False(t, IsActive(nil, `C:\Windows`))
}

func TestActiveIndex(t *testing.T) {
	current := pathlist.Parse(`C:\Windows;C:\Py312`)

	assert.Equal(t, 1, ActiveIndex(current, []string{`C:\Py311`, `C:\PY312`}))
	assert.Equal(t, -1, ActiveIndex(current, []string{`C:\Py310`}))
}
