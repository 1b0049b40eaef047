package director

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// LoadProps reads template props from a YAML file. Missing fields keep the
// DefaultProps values.
func LoadProps(path string) (*Props, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read props %s: %w", path, err)
	}

	props := DefaultProps()
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("parse props %s: %w", path, err)
	}
	return &props, nil
}

// Build dispatches on props.Template.
func Build(p *Props) (*Template, error) {
	switch p.Template {
	case TemplateYouTubeIntro:
		return YouTubeIntro(p)
	case TemplateTikTokShort:
		return TikTokShort(p)
	case TemplateTextExplainer:
		return TextExplainer(p)
	case TemplatePresentation:
		return Presentation(p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, p.Template)
	}
}

// WriteYAML encodes a template plan or sample.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WritePlan writes the segment plan of a template to path.
func WritePlan(t *Template, path string) error {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, t); err != nil {
		return err
	}
	return renameio.WriteFile(path, buf.Bytes(), 0644)
}
