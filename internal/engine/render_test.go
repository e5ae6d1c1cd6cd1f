package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/specialistvlad/mailassembler/internal/attributes"
	"github.com/specialistvlad/mailassembler/internal/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTable builds an attribute table from (full name, column, value...) rows.
func newTable(rows ...[]string) *attributes.Table {
	table := attributes.NewTable()
	for _, row := range rows {
		rec := attributes.NewRecord()
		rec.Set(attributes.FullNameColumn, row[0])
		for i := 1; i+1 < len(row); i += 2 {
			rec.Set(row[i], row[i+1])
		}
		table.Add(rec)
	}
	return table
}

func person(name string, items ...*markup.Node) *markup.Node {
	children := []*markup.Node{
		markup.NewNode("full name", name),
		markup.NewNode("email", strings.ToLower(name)+"@x.com"),
	}
	return markup.NewInterior("person", append(children, items...)...)
}

func item(fields ...string) *markup.Node {
	var children []*markup.Node
	for i := 0; i+1 < len(fields); i += 2 {
		children = append(children, markup.NewNode(fields[i], fields[i+1]))
	}
	return markup.NewInterior("item", children...)
}

func TestRenderSchedule_PlainText(t *testing.T) {
	t.Parallel()

	t.Run("no items", func(t *testing.T) {
		assert.Equal(t, "", RenderSchedule(person("Ann"), PlainText))
	})

	t.Run("title only", func(t *testing.T) {
		got := RenderSchedule(person("Ann", item("title", "TITLE")), PlainText)
		assert.Equal(t, "TITLE\n\n\n", got)
	})

	t.Run("all fields in order", func(t *testing.T) {
		p := person("Ann", item(
			"precis", "About it",
			"title", "Panel",
			"equipment", "Projector",
			"participants", "Ann, Bob",
		))
		got := RenderSchedule(p, PlainText)
		assert.Equal(t, "Panel\nAnn, Bob\nProjector\nAbout it\n\n", got)
	})

	t.Run("several items and an empty one", func(t *testing.T) {
		p := person("Ann",
			item("title", "One", "participants", "Ann"),
			markup.NewNode("item", ""),
			item("title", "Two", "participants", "Ann, Cy", "precis", "Late"),
		)
		got := RenderSchedule(p, PlainText)
		assert.Equal(t, "One\nAnn\n\n"+"\n\n\n"+"Two\nAnn, Cy\nLate\n\n", got)
	})
}

func TestRenderSchedule_HTML(t *testing.T) {
	t.Parallel()

	p := person("Ann",
		item("title", "Panel", "participants", "Ann, Bob", "equipment", "Mic"),
		item("title", "Reading"),
	)

	got := RenderSchedule(p, HTML)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(got))
	require.NoError(t, err)

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		paragraphs = append(paragraphs, s.Text())
	})
	assert.Equal(t, []string{"Panel", "Ann, Bob", "Mic", "", "Reading", "", ""}, paragraphs)
}

func TestRender_Substitutions(t *testing.T) {
	t.Parallel()

	table := newTable(
		[]string{"Ann", "badge", "VIP", "track", "Tech", "note", "[[track]]"},
		[]string{"Bob", "badge", "", "track", "Art"},
	)
	r := NewRenderer(table, PlainText)

	testCases := []struct {
		name   string
		person *markup.Node
		body   string
		want   string
	}{
		{name: "plain column", person: person("Ann"), body: "Dear [[full name]],", want: "Dear Ann,"},
		{name: "column lookup ignores case and spaces", person: person("Ann"), body: "[[Full Name]]/[[ TRACK ]]", want: "Ann/Tech"},
		{name: "decorated value", person: person("Ann"), body: "[[Hello, |full name|!]]", want: "Hello, Ann!"},
		{name: "decorated empty value", person: person("Bob"), body: "x[[Badge: |badge|.]]y", want: "xy"},
		{name: "schedule token ignores case", person: person("Ann", item("title", "Panel")), body: "[[Schedule]]end", want: "Panel\n\n\nend"},
		{name: "no tokens", person: person("Ann"), body: "nothing to do", want: "nothing to do"},
		{name: "unterminated token is left alone", person: person("Ann"), body: "a [[full name", want: "a [[full name"},
		{name: "substitutions are not rescanned", person: person("Ann"), body: "[[note]]", want: "[[track]]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Render(tc.body, tc.person)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRender_MissingColumnIsFatal(t *testing.T) {
	t.Parallel()

	r := NewRenderer(newTable([]string{"Ann", "track", "Tech"}), PlainText)

	for _, body := range []string{"Dear [[nickname]]", "[[Hi |nickname|!]]"} {
		_, err := r.Render(body, person("Ann"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingColumn))

		var colErr *MissingColumnError
		require.True(t, errors.As(err, &colErr))
		assert.Equal(t, "nickname", colErr.Column)
		assert.Equal(t, "Ann", colErr.Person)
	}
}

func TestRender_UnknownPerson(t *testing.T) {
	t.Parallel()

	r := NewRenderer(newTable([]string{"Ann"}), PlainText)

	_, err := r.Render("Dear [[full name]]", person("Zed"))
	assert.True(t, errors.Is(err, ErrUnknownPerson))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, HTML, ParseFormat("html"))
	assert.Equal(t, HTML, ParseFormat(" HTML "))
	assert.Equal(t, PlainText, ParseFormat("text"))
	assert.Equal(t, PlainText, ParseFormat(""))
}
