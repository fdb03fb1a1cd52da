package dataset

import (
	"github.com/pkg/errors"
)

const (
	DefaultTemplate  = "XMLMSG.xml"
	DefaultWrapWidth = 16
	DefaultOutput    = "DATASET"
	DefaultFormat    = "bin"
)

type Config struct {
	// UseContainerPrefix treats the first file name segment as the ZDC
	// container name and names the output after it.
	UseContainerPrefix bool
	TemplatePath       string
	// WrapWidth is the number of 0xHH tokens per output line.
	WrapWidth int
	// OutputName is the base name used when no container name is available.
	OutputName string
	OutputDir  string
	// Format is accepted for compatibility and does not change the encoding.
	Format string
	// Jobs bounds the number of input files read concurrently.
	Jobs            int
	MetricsTextfile string
}

func DefaultConfig() Config {
	return Config{
		UseContainerPrefix: true,
		TemplatePath:       DefaultTemplate,
		WrapWidth:          DefaultWrapWidth,
		OutputName:         DefaultOutput,
		Format:             DefaultFormat,
		Jobs:               1,
	}
}

func (c Config) Validate() error {
	if c.TemplatePath == "" {
		return errors.New("template path is empty")
	}
	if c.OutputName == "" {
		return errors.New("output name is empty")
	}
	if c.WrapWidth < 1 {
		return errors.Errorf("caret must be at least 1, got %d", c.WrapWidth)
	}
	if c.Jobs < 1 {
		return errors.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}

// KnownFormat reports whether Format is one of the documented values. Other
// values are accepted, since the format never changes the output.
func (c Config) KnownFormat() bool {
	return c.Format == "bin" || c.Format == "hex"
}
