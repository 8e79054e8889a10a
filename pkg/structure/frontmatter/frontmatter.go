// Package frontmatter reads and writes article metadata embedded at the top
// of markdown document files. YAML ("---") and TOML ("+++") fences are
// supported; JSON bodies inside a "---" fence parse as YAML.
package frontmatter

import (
	"bytes"
	stderrors "errors"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = stderrors.New("invalid frontmatter")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Frontmatter carries the article fields that travel with an exported
// document file.
type Frontmatter struct {
	Title    string   `yaml:"title,omitempty" toml:"title,omitempty"`
	Excerpt  string   `yaml:"excerpt,omitempty" toml:"excerpt,omitempty"`
	Tags     []string `yaml:"tags,omitempty" toml:"tags,omitempty"`
	Category string   `yaml:"category,omitempty" toml:"category,omitempty"`
	Status   string   `yaml:"status,omitempty" toml:"status,omitempty"`

	format Format
}

func (f *Frontmatter) Format() Format {
	if f == nil || f.format == "" {
		return FormatYAML
	}
	return f.format
}

// Split separates a document into frontmatter and body. Documents without a
// recognized fence return a nil Frontmatter and the input unchanged. A fence
// that never closes or fails to parse is an error.
func Split(data []byte) (*Frontmatter, []byte, error) {
	delim, format := fenceOf(data)
	if delim == "" {
		return nil, data, nil
	}

	rest := data[len(delim)+1:]
	end := bytes.Index(rest, []byte("\n"+delim))
	if end < 0 {
		return nil, nil, errors.WithStack(ErrInvalid)
	}

	raw := rest[:end]
	body := rest[end+len(delim)+1:]
	body = bytes.TrimPrefix(body, []byte("\n"))

	var f Frontmatter
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(raw, &f)
	case FormatTOML:
		err = toml.Unmarshal(raw, &f)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse frontmatter")
	}
	f.format = format
	return &f, body, nil
}

// Compose renders a document file: the marshaled frontmatter, a blank line,
// then the body.
func Compose(f *Frontmatter, body []byte, format Format) ([]byte, error) {
	if f == nil {
		return body, nil
	}

	var (
		raw []byte
		err error
	)
	switch format {
	case FormatTOML:
		raw, err = toml.Marshal(f)
	case FormatYAML, "":
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err = encoder.Encode(f); err == nil {
			err = encoder.Close()
		}
		raw = buf.Bytes()
	default:
		return nil, errors.Errorf("unknown frontmatter format: %q", format)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	delim := "---"
	if format == FormatTOML {
		delim = "+++"
	}

	var out bytes.Buffer
	out.WriteString(delim + "\n")
	out.Write(raw)
	if !bytes.HasSuffix(raw, []byte("\n")) {
		out.WriteByte('\n')
	}
	out.WriteString(delim + "\n")
	if len(body) > 0 {
		out.WriteByte('\n')
		out.Write(body)
	}
	return out.Bytes(), nil
}

func fenceOf(data []byte) (delim string, format Format) {
	s := string(data)
	switch {
	case strings.HasPrefix(s, "---\n"):
		return "---", FormatYAML
	case strings.HasPrefix(s, "+++\n"):
		return "+++", FormatTOML
	default:
		return "", ""
	}
}
