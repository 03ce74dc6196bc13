// Package conf reads configuration files and renders their entries as flag
// tokens ("-key=value") so that they go through the same tokenizer and
// resolver as the command line.
package conf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cagecoin-project/getarg/errs"
)

// Format identifies a configuration file syntax
type Format int

const (
	// FormatKeyValue is the daemon style "key=value" format with # comments
	FormatKeyValue Format = iota
	// FormatYAML is a single top-level YAML mapping
	FormatYAML
	// FormatHCL holds top-level HCL attributes
	FormatHCL
)

func (f Format) String() string {
	switch f {
	case FormatKeyValue:
		return "key=value"
	case FormatYAML:
		return "yaml"
	case FormatHCL:
		return "hcl"
	default:
		return "unknown"
	}
}

// FormatOf picks the format from the file extension. Files without an
// extension use FormatKeyValue.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".conf", ".cfg":
		return FormatKeyValue, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return 0, errs.ErrConfigFormat.WithArgs(ext)
	}
}

// Load reads the file at path and returns its entries as tokens in file order.
// Read errors wrap the underlying error so callers can test for fs.ErrNotExist.
func Load(path string) ([]string, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.ErrConfigRead.WithArgs(path).Wrap(err)
	}

	return Parse(data, path, format)
}

// Parse decodes data in the given format. name is only used in error messages.
func Parse(data []byte, name string, format Format) ([]string, error) {
	switch format {
	case FormatKeyValue:
		return parseKeyValue(data, name)
	case FormatYAML:
		return parseYAML(data, name)
	case FormatHCL:
		return parseHCL(data, name)
	default:
		return nil, errs.ErrConfigFormat.WithArgs(format.String())
	}
}

func token(key, value string) string {
	return "-" + key + "=" + value
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
