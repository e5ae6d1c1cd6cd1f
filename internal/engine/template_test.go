package engine

import (
	"errors"
	"testing"

	"github.com/specialistvlad/mailassembler/internal/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	doc := "<select>\n<header> Track </header>\n<value> Tech </value>\n</select>\n" +
		"<email body>Dear [[full name]],\n[[schedule]]</email body>\n"

	tmpl, err := ParseTemplate(doc)
	require.NoError(t, err)

	assert.Equal(t, Selection{Header: "track", Value: "Tech"}, tmpl.Selection)
	assert.Equal(t, "Dear [[full name]],\n[[schedule]]", tmpl.Body)
	assert.Empty(t, tmpl.OutputFile)
}

func TestParseTemplate_EmptyValueAndOutputOverride(t *testing.T) {
	t.Parallel()

	doc := "<select><header>badge</header><value></value></select>" +
		"<email body><p>Hi [[full name]]</p></email body>" +
		"<inputFileName> custom.txt </inputFileName>"

	tmpl, err := ParseTemplate(doc)
	require.NoError(t, err)

	assert.Equal(t, "", tmpl.Selection.Value)
	assert.Equal(t, "<p>Hi [[full name]]</p>", tmpl.Body, "html inside the body is kept verbatim")
	assert.Equal(t, "custom.txt", tmpl.OutputFile)
}

func TestParseTemplate_StructureErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		doc       string
		wantBlock string
		wantFound string
	}{
		{name: "empty", doc: "", wantBlock: BlockSelect},
		{name: "body first", doc: "<email body>x</email body><select></select>", wantBlock: BlockSelect, wantFound: "email body"},
		{name: "no header", doc: "<select><value>x</value></select><email body>x</email body>", wantBlock: BlockHeader, wantFound: "value"},
		{name: "no value", doc: "<select><header>x</header></select><email body>x</email body>", wantBlock: BlockValue},
		{name: "no body", doc: "<select><header>x</header><value>y</value></select>", wantBlock: BlockEmailBody},
		{name: "wrong second block", doc: "<select><header>x</header><value>y</value></select><note>n</note><email body>x</email body>", wantBlock: BlockEmailBody, wantFound: "note"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseTemplate(tc.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTemplateStructure))

			var tmplErr *TemplateError
			require.True(t, errors.As(err, &tmplErr))
			assert.Equal(t, tc.wantBlock, tmplErr.Block)
			assert.Equal(t, tc.wantFound, tmplErr.Found)
		})
	}
}

func TestParseTemplate_RejectsUnbalancedMarkup(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplate("<select><header>x</header><value>y</value></select><email body>Dear [[name</email body>")

	require.Error(t, err)
	assert.True(t, errors.Is(err, markup.ErrUnbalanced))
	assert.False(t, errors.Is(err, ErrTemplateStructure))
}
