package dataset

import (
	"strings"
)

const Marker = "<!--PARAMETERS-->"

const outputExt = ".xml"

// Inject replaces the first Marker in tpl with fragments. A template without
// the marker is returned unchanged.
func Inject(tpl, fragments string) string {
	return strings.Replace(tpl, Marker, fragments, 1)
}

func HasMarker(tpl string) bool {
	return strings.Contains(tpl, Marker)
}

func OutputName(lastContainer string, useContainerPrefix bool, defaultName string) string {
	if useContainerPrefix && lastContainer != "" {
		return lastContainer + outputExt
	}
	return defaultName + outputExt
}
