package cleaner

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathswitch/internal/model"
	"pathswitch/internal/pathlist"
)

// newTestCleaner returns a Cleaner on a memory filesystem where every path in
// dirs exists.
func newTestCleaner(t *testing.T, dirs ...string) *Cleaner {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(d, 0o755))
	}
	return New(fs)
}

func TestScan(t *testing.T) {
	c := newTestCleaner(t, `C:\A`, `C:\B`)

	issues := c.Scan(pathlist.Parse(`C:\A;C:\B;C:\A;C:\Missing`))

	assert.Equal(t, []model.Issue{
		{Path: `C:\A`, Kind: model.IssueDuplicate, Selected: true},
		{Path: `C:\Missing`, Kind: model.IssueMissing, Selected: true},
	}, issues)
}

func TestScan_CaseInsensitiveDuplicate(t *testing.T) {
	c := newTestCleaner(t, `C:\Foo`)

	issues := c.Scan(pathlist.Parse(`C:\Foo;c:\foo`))

	require.Len(t, issues, 1)
	assert.Equal(t, `c:\foo`, issues[0].Path)
	assert.Equal(t, model.IssueDuplicate, issues[0].Kind)
}

func TestScan_DuplicateWinsOverMissing(t *testing.T) {
	c := newTestCleaner(t)

	issues := c.Scan([]string{`C:\Gone`, `C:\Gone`})

	assert.Equal(t, []model.Issue{
		{Path: `C:\Gone`, Kind: model.IssueMissing, Selected: true},
		{Path: `C:\Gone`, Kind: model.IssueDuplicate, Selected: true},
	}, issues)
}

func TestScan_FilesCountAsExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/opt/tool", []byte("x"), 0o644))

	assert.Empty(t, New(fs).Scan([]string{"/opt/tool"}))
}

func TestScan_NoIssues(t *testing.T) {
	c := newTestCleaner(t, "/usr/bin", "/bin")
	assert.Empty(t, c.Scan([]string{"/usr/bin", "/bin"}))
	assert.Empty(t, c.Scan(nil))
}

func TestClean(t *testing.T) {
	current := pathlist.Parse(`C:\A;C:\B;C:\A;C:\Missing`)
	issues := []model.Issue{
		{Path: `C:\A`, Kind: model.IssueDuplicate, Selected: true},
		{Path: `C:\Missing`, Kind: model.IssueMissing, Selected: true},
	}

	got, removed := Clean(current, issues)

	assert.Equal(t, `C:\A;C:\B`, pathlist.Serialize(got))
	assert.Equal(t, 2, removed)
}

func TestClean_RespectsSelection(t *testing.T) {
	current := pathlist.Parse(`C:\A;C:\B;C:\A;C:\Missing`)
	issues := []model.Issue{
		{Path: `C:\A`, Kind: model.IssueDuplicate, Selected: false},
		{Path: `C:\Missing`, Kind: model.IssueMissing, Selected: true},
	}

	got, removed := Clean(current, issues)

	assert.Equal(t, `C:\A;C:\B;C:\A`, pathlist.Serialize(got))
	assert.Equal(t, 1, removed)
}

func TestClean_NothingSelected(t *testing.T) {
	current := pathlist.Parse(`C:\A;C:\A`)
	got, removed := Clean(current, []model.Issue{{Path: `C:\A`, Kind: model.IssueDuplicate}})

	assert.Equal(t, current, got)
	assert.Zero(t, removed)
}

func TestClean_KeepsFirstOccurrence(t *testing.T) {
	current := []string{`C:\X`, `C:\Tools`, `c:\tools`, `C:\X`, `C:\TOOLS`}
	c := newTestCleaner(t, `C:\X`, `C:\Tools`)

	got, removed := Clean(current, c.Scan(current))

	assert.Equal(t, []string{`C:\X`, `C:\Tools`}, got)
	assert.Equal(t, 3, removed)
}

func TestClean_MissingRemovesEveryOccurrence(t *testing.T) {
	current := []string{`C:\Gone`, `C:\Here`, `c:\gone`}
	c := newTestCleaner(t, `C:\Here`)

	got, removed := Clean(current, c.Scan(current))

	assert.Equal(t, []string{`C:\Here`}, got)
	assert.Equal(t, 2, removed)
}

func TestScanCleanConverges(t *testing.T) {
	c := newTestCleaner(t, `C:\A`, `C:\B`, `D:\bin`)
	inputs := []string{
		`C:\A;C:\B;C:\A;C:\Missing`,
		`C:\Missing;c:\missing;C:\A;c:\a;D:\bin;d:\BIN;C:\B`,
		`C:\A`,
		``,
	}

	for _, raw := range inputs {
		current := pathlist.Parse(raw)
		cleaned, _ := Clean(current, c.Scan(current))

		assert.Empty(t, c.Scan(cleaned), "input %q", raw)

		again, removed := Clean(cleaned, c.Scan(cleaned))
		assert.Zero(t, removed)
		assert.Equal(t, cleaned, again)
	}
}

func TestCounts(t *testing.T) {
	missing, dupes := Counts([]model.Issue{
		{Kind: model.IssueMissing},
		{Kind: model.IssueDuplicate},
		{Kind: model.IssueDuplicate},
	})
	assert.Equal(t, 1, missing)
	assert.Equal(t, 2, dupes)
}
