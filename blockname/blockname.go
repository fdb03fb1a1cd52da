// Package blockname recovers block metadata from the input file naming
// convention
//
//	[containerName.]parameterName.address.ext
//
// The address is always the segment right before the extension. With
// container prefixes enabled the first segment names the ZDC container and
// everything between it and the address is the parameter name.
package blockname

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const separator = "."

var ErrMalformedName = errors.New("malformed block file name")

type Metadata struct {
	ContainerName string
	ParameterName string
	Address       string
}

// Parse splits the base name of filename on ".". Only a name without an
// extension is rejected; missing parameter or address segments come back
// empty.
func Parse(filename string, useContainerPrefix bool) (Metadata, error) {
	base := filepath.Base(filename)
	segs := strings.Split(base, separator)
	if len(segs) < 2 {
		return Metadata{}, errors.Wrapf(ErrMalformedName, "%s: no %q-separated extension", filename, separator)
	}

	var md Metadata
	first := 0
	if useContainerPrefix {
		md.ContainerName = segs[0]
		first = 1
	}

	addrIdx := len(segs) - 2
	md.Address = segs[addrIdx]
	if addrIdx > first {
		md.ParameterName = strings.Join(segs[first:addrIdx], separator)
	}

	return md, nil
}
