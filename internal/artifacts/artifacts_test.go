package artifacts

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/scons/sconsweb/internal/page"
)

// completeVersion adds every man page and user guide artifact of v.
func completeVersion(fsys fstest.MapFS, v string) {
	for _, t := range []page.Table{page.ManPageTable, page.UserGuideTable} {
		for _, f := range t.Formats {
			fsys[f.Path(v)] = &fstest.MapFile{Data: []byte(v)}
		}
	}
}

func TestCheckComplete(t *testing.T) {
	fsys := fstest.MapFS{}
	completeVersion(fsys, "0.96.1")
	completeVersion(fsys, "0.96")

	warnings, err := Check(fsys, []string{"0.96.1", "0.96"}, page.ManPageTable, page.UserGuideTable)
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestCheckMissing(t *testing.T) {
	fsys := fstest.MapFS{}
	completeVersion(fsys, "0.96.1")
	delete(fsys, "doc/0.96.1/PDF/scons-user.pdf")

	warnings, err := Check(fsys, []string{"0.96.1"}, page.ManPageTable, page.UserGuideTable)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, Warning{Kind: Missing, Version: "0.96.1", Table: "user", Path: "doc/0.96.1/PDF/scons-user.pdf"}, warnings[0])
	require.Contains(t, warnings[0].String(), "missing doc/0.96.1/PDF/scons-user.pdf")
}

func TestCheckVersionWithNothing(t *testing.T) {
	warnings, err := Check(fstest.MapFS{}, []string{"0.95"}, page.ManPageTable)
	require.NoError(t, err)
	require.Len(t, warnings, len(page.ManPageTable.Formats))
	for _, w := range warnings {
		require.Equal(t, Missing, w.Kind)
		require.Equal(t, "man", w.Table)
	}
}

func TestCheckUndeclared(t *testing.T) {
	fsys := fstest.MapFS{}
	completeVersion(fsys, "0.96.1")
	completeVersion(fsys, "0.97")
	completeVersion(fsys, ProductionDir)

	warnings, err := Check(fsys, []string{"0.96.1"}, page.ManPageTable, page.UserGuideTable)
	require.NoError(t, err)
	require.Equal(t, []Warning{{Kind: Undeclared, Version: "0.97"}}, warnings)
}

func TestCheckNoVersions(t *testing.T) {
	warnings, err := Check(fstest.MapFS{}, nil, page.ManPageTable, page.UserGuideTable)
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestDiscover(t *testing.T) {
	fsys := fstest.MapFS{
		"doc/0.96/HTML/scons-man.html":  {},
		"doc/0.92/TEXT/scons-man.txt":   {},
		"doc/0.96/PS/scons-man.ps":      {},
		"doc/production/HTML/x.html":    {},
		"doc/notes/README":              {},
		"doc/0.94/images/scons-man.png": {},
	}
	versions, err := Discover(fsys)
	require.NoError(t, err)
	require.Equal(t, []string{"0.92", "0.96"}, versions)
}
