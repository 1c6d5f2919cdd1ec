package format

import (
	"encoding/json"
	"fmt"
	"io"

	units "github.com/docker/go-units"
	"gopkg.in/yaml.v3"
)

// Entry is one ranked attachment ready for rendering.
type Entry struct {
	Name      string
	Parent    string
	Size      uint64
	CreatedAt string
}

// Label renders the entry as a single result line.
func (e Entry) Label() string {
	return fmt.Sprintf("%s (%s) - %s", e.Name, e.Parent, ByteSize(e.Size))
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// ByteSize renders a byte count scaled by 1024, e.g. "144.1 KB".
func ByteSize(size uint64) string {
	return units.CustomSize("%.1f %s", float64(size), 1024.0, sizeUnits)
}

// Formatter abstracts output formatting.
type Formatter interface {
	Write(w io.Writer, entries []Entry) error
}

// New returns the formatter for the given name.
func New(name string) (Formatter, error) {
	switch name {
	case "", "text":
		return TextFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "yaml":
		return YAMLFormatter{}, nil
	case "table":
		return TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

// TextFormatter writes one label line per entry.
type TextFormatter struct{}

// Write writes label lines to a writer.
func (f TextFormatter) Write(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.Label()); err != nil {
			return err
		}
	}
	return nil
}

type record struct {
	AssetName string `json:"asset_name" yaml:"asset_name"`
	Parent    string `json:"parent" yaml:"parent"`
	SizeBytes uint64 `json:"size_bytes" yaml:"size_bytes"`
	Size      string `json:"size" yaml:"size"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

func toRecords(entries []Entry) []record {
	records := make([]record, 0, len(entries))
	for _, e := range entries {
		records = append(records, record{
			AssetName: e.Name,
			Parent:    e.Parent,
			SizeBytes: e.Size,
			Size:      ByteSize(e.Size),
			CreatedAt: e.CreatedAt,
		})
	}
	return records
}

// JSONFormatter writes JSON output.
type JSONFormatter struct{}

// Write writes JSON payload to a writer.
func (f JSONFormatter) Write(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	return enc.Encode(toRecords(entries))
}

// YAMLFormatter writes YAML output.
type YAMLFormatter struct{}

// Write writes YAML payload to a writer.
func (f YAMLFormatter) Write(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(toRecords(entries)); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
