package attributes

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/specialistvlad/mailassembler/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollector() *diag.Collector {
	return diag.New(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"full name", "Full Name", " FULL\tNAME ", "fullname", "Full  name"} {
		assert.Equal(t, "fullname", NormalizeKey(in), "input %q", in)
	}
}

func TestRecord_SetAndGet(t *testing.T) {
	t.Parallel()

	rec := NewRecord()
	rec.Set("Full Name", "Ann")
	rec.Set("track", "Tech")
	rec.Set("TRACK", "Art")

	v, ok := rec.Get("full name")
	require.True(t, ok)
	assert.Equal(t, "Ann", v)

	v, ok = rec.Get("Track")
	require.True(t, ok)
	assert.Equal(t, "Art", v, "a repeated column overwrites")
	assert.Equal(t, []string{"Full Name", "track"}, rec.Columns())

	_, ok = rec.Get("badge")
	assert.False(t, ok)
	assert.Equal(t, "Ann", rec.FullName())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	doc := "<person><full name>Ann</full name><track>Tech</track><badge></badge></person>\n" +
		"<person><Full Name>Bob Smith</Full Name><track>Art</track></person>\n"

	table := Load(doc, newCollector())
	require.Equal(t, 2, table.Len())

	ann, ok := table.Lookup("ann")
	require.True(t, ok)
	track, _ := ann.Get("track")
	assert.Equal(t, "Tech", track)
	badge, ok := ann.Get("badge")
	assert.True(t, ok)
	assert.Empty(t, badge)

	bob, ok := table.Lookup("BOB  SMITH")
	require.True(t, ok)
	assert.Equal(t, "Bob Smith", bob.FullName())

	assert.True(t, table.HasColumn("Track"))
	assert.True(t, table.HasColumn("badge"), "schema is the union of all columns")
	assert.False(t, table.HasColumn("email"))

	assert.Equal(t, 2, table.Len())
}

func TestLoad_DiscardsPersonWithoutFullName(t *testing.T) {
	t.Parallel()

	d := newCollector()
	table := Load("<person><track>Tech</track></person><person><full name>Ann</full name></person>", d)

	assert.Equal(t, 1, table.Len())
	require.True(t, d.HasErrors())
	assert.Contains(t, d.Diagnostics()[0].Detail, "Entry 1")
}

func TestLoad_DuplicateNameLastWins(t *testing.T) {
	t.Parallel()

	d := newCollector()
	table := Load("<person><full name>Ann</full name><track>A</track></person>"+
		"<person><full name>ann</full name><track>B</track></person>", d)

	require.Equal(t, 1, table.Len())
	rec, _ := table.Lookup("Ann")
	track, _ := rec.Get("track")
	assert.Equal(t, "B", track)
	assert.False(t, d.HasErrors())
	assert.Len(t, d.Diagnostics(), 1)
}
