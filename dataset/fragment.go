package dataset

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/anupcshan/bin2dataset/blockname"
)

// Attribute values are written as-is; file names are expected to be XML-safe.
var fragmentTmpl = template.Must(template.New("fragment").Parse(`
<PARAMETER_DATA DIAGNOSTIC_ADDRESS="0x5F" START_ADDRESS="{{.Address}}" PR_IDX="" ZDC_NAME="{{.ContainerName}}" ZDC_VERSION="0001" LOGIN="20103" LOGIN_IND="" DSD_TYPE="1" SESSIONNAME="" FILENAME="{{.ParameterName}}">
{{.Data}}
</PARAMETER_DATA>`))

type Fragment struct {
	Metadata blockname.Metadata
	Text     string
}

func BuildFragment(md blockname.Metadata, encodedHex string) (string, error) {
	var b strings.Builder
	err := fragmentTmpl.Execute(&b, struct {
		blockname.Metadata
		Data string
	}{md, encodedHex})
	if err != nil {
		return "", errors.Wrap(err, "render fragment")
	}
	return b.String(), nil
}

// Assemble concatenates fragments in order. Each fragment carries its own
// leading newline, so no separator is added.
func Assemble(fragments []Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}
