package testutil

import (
	"fmt"
	"path/filepath"
	"testing"
)

// Schedule is a schedule document with Ann (one panel) and Bob (two items).
const Schedule = `<person>
<full name>Ann</full name>
<email>ann@x.com</email>
<item>
<title>Panel</title>
<participants>none</participants>
<precis>none</precis>
</item>
</person>
<person>
<full name>Bob</full name>
<email>bob@x.com</email>
<item>
<title>Reading</title>
<participants>Bob</participants>
</item>
<item>
<title>Workshop</title>
<participants>Bob, Cy</participants>
<equipment>Projector</equipment>
</item>
</person>
`

// Participants is the attribute table matching Schedule.
const Participants = `<person><full name>Ann</full name><track>Tech</track><badge>VIP</badge></person>
<person><full name>Bob</full name><track>tech</track><badge></badge></person>
`

// Template selects track=Tech and greets by full name.
const Template = `<select>
<header>track</header>
<value>Tech</value>
</select>
<email body>Dear [[full name]],
[[schedule]][[Badge: |badge|]]</email body>
`

// Workspace is a directory laid out the way a run expects it.
type Workspace struct {
	Root       string
	ReportsDir string
	Params     string
	Output     string
}

// NewWorkspace writes the reports, the template and an HCL parameter file
// pointing at them, all with absolute paths. Entries in overrides replace
// or add files, keyed by path relative to the workspace root.
func NewWorkspace(t *testing.T, overrides map[string]string) *Workspace {
	t.Helper()

	files := map[string]string{
		"reports/Program participant schedules.xml": Schedule,
		"reports/Program participants.xml":          Participants,
		"Template.xml":                              Template,
	}
	for name, content := range overrides {
		files[name] = content
	}

	root := WriteFiles(t, nil)
	ws := &Workspace{
		Root:       root,
		ReportsDir: filepath.Join(root, "reports"),
		Params:     filepath.Join(root, "parameters.hcl"),
		Output:     filepath.Join(root, "out.txt"),
	}
	if _, ok := files["parameters.hcl"]; !ok {
		files["parameters.hcl"] = fmt.Sprintf(
			"reports_dir   = %q\nmail_format   = \"text\"\ntemplate_file = %q\noutput_file   = %q\n",
			ws.ReportsDir, filepath.Join(root, "Template.xml"), ws.Output)
	}

	for name, content := range files {
		writeOne(t, root, name, content)
	}
	return ws
}
