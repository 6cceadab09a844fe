package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-signup/pkg/model"
)

type documentFile struct {
	Form   FormConfig             `json:"form" yaml:"form"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

// LoadFS reads and parses a hints file from fsys.
func LoadFS(fsys fs.FS, path string) (*Form, error) {
	if fsys == nil {
		return nil, fmt.Errorf("uischema: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFile reads and parses a hints file from disk.
func LoadFile(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes JSON or YAML hints. Unknown field keys are rejected so typos
// surface instead of silently dropping hints.
func Parse(data []byte, source string) (*Form, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	return normaliseDocument(doc, source)
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	if isJSON(source, data) {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("uischema: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("uischema: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseDocument(doc documentFile, source string) (*Form, error) {
	form := &Form{
		Source:      source,
		Title:       sanitizeText(doc.Form.Title),
		Subtitle:    sanitizeText(doc.Form.Subtitle),
		SubmitLabel: sanitizeText(doc.Form.SubmitLabel),
		Metadata:    cloneStringMap(doc.Form.Metadata),
		Fields:      make(map[model.Field]FieldConfig, len(doc.Fields)),
	}
	if form.SubmitLabel == "" {
		form.SubmitLabel = "Submit"
	}

	for key, cfg := range doc.Fields {
		field, err := model.ParseField(key)
		if err != nil {
			return nil, fmt.Errorf("uischema: file %s: %w", source, err)
		}
		if _, exists := form.Fields[field]; exists {
			return nil, fmt.Errorf("uischema: file %s defines field %q twice", source, field)
		}
		if err := validateKeyboard(cfg.Keyboard); err != nil {
			return nil, fmt.Errorf("uischema: file %s field %q: %w", source, field, err)
		}
		cfg.Label = sanitizeText(cfg.Label)
		cfg.Placeholder = sanitizeText(cfg.Placeholder)
		cfg.HelpText = sanitizeHelpMarkup(cfg.HelpText)
		cfg.CSSClass = strings.TrimSpace(cfg.CSSClass)
		form.Fields[field] = cfg
	}

	return form, nil
}

func validateKeyboard(keyboard string) error {
	switch keyboard {
	case "", KeyboardDefault, KeyboardEmail, KeyboardPhone:
		return nil
	default:
		return fmt.Errorf("unsupported keyboard %q", keyboard)
	}
}

func isJSON(source string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(source), ".json") {
		return true
	}
	trimmed := strings.TrimSpace(string(data))
	return strings.HasPrefix(trimmed, "{")
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
