package views

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/grovetools/viewpick/errors"
	"github.com/grovetools/viewpick/pkg/picker"
	"github.com/moby/patternmatcher"
	"gopkg.in/yaml.v3"
)

// Export is the view enumeration written by the host application. Both YAML
// and JSON encodings are accepted.
type Export struct {
	Document    string  `yaml:"document,omitempty" json:"document,omitempty"`
	CurrentView string  `yaml:"current_view,omitempty" json:"current_view,omitempty"`
	Views       []*View `yaml:"views" json:"views"`
}

// ReadExport reads and normalizes an export file. Views without an id get a
// stable one derived from their position, type and name.
func ReadExport(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ViewFileInvalid(path, err)
	}
	return ParseExport(path, data)
}

// ParseExport decodes export data; path is used for error reporting only.
func ParseExport(path string, data []byte) (*Export, error) {
	var export Export
	if err := yaml.Unmarshal(data, &export); err != nil {
		return nil, errors.ViewFileInvalid(path, err)
	}
	for i, v := range export.Views {
		if v == nil {
			continue
		}
		v.Type = ParseKind(string(v.Type))
		if v.Identity == "" {
			key := fmt.Sprintf("view:%d:%s:%s", i, v.Type, v.Title)
			v.Identity = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
		}
	}
	return &export, nil
}

// FileSource enumerates views from an export file. It implements
// picker.Source.
type FileSource struct {
	Path string
	// Ignore holds glob patterns matched against the whole view name; matching
	// views are not offered. "/" in a name is an ordinary character, so
	// "Level 1" does not hide "Level 1/Mezzanine". Patterns apply in order and
	// a leading "!" re-includes.
	Ignore []string

	export *Export
}

// NewFileSource creates a source reading path.
func NewFileSource(path string, ignore []string) *FileSource {
	return &FileSource{Path: path, Ignore: ignore}
}

// Enumerate reads the export and returns its views minus ignored names.
func (s *FileSource) Enumerate() ([]picker.Object, error) {
	export, err := ReadExport(s.Path)
	if err != nil {
		return nil, err
	}

	var matcher *patternmatcher.PatternMatcher
	if len(s.Ignore) > 0 {
		matcher, err = patternmatcher.New(s.Ignore)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid ignore pattern").
				WithDetail("patterns", s.Ignore)
		}
	}

	objects := make([]picker.Object, 0, len(export.Views))
	for _, v := range export.Views {
		if v == nil {
			continue
		}
		if matcher != nil {
			ignored, err := matchesName(matcher, v.Title)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to match ignore pattern").
					WithDetail("view", v.Title)
			}
			if ignored {
				continue
			}
		}
		objects = append(objects, v)
	}

	s.export = export
	return objects, nil
}

// matchesName applies the patterns in order to the whole of name. The
// matcher's own path matching also matches parent directories, which would
// treat names containing "/" as nested.
func matchesName(pm *patternmatcher.PatternMatcher, name string) (bool, error) {
	matched := false
	for _, p := range pm.Patterns() {
		if p.Exclusion() != matched {
			continue
		}
		ok, err := filepath.Match(p.String(), name)
		if err != nil {
			return false, err
		}
		if ok {
			matched = !p.Exclusion()
		}
	}
	return matched, nil
}

// CurrentView returns the id of the view active in the host when the export
// was written. It is empty until Enumerate succeeds.
func (s *FileSource) CurrentView() string {
	if s.export == nil {
		return ""
	}
	return s.export.CurrentView
}

// DefaultID implements picker.DefaultProvider.
func (s *FileSource) DefaultID() string {
	return s.CurrentView()
}

// Document returns the host document name recorded in the export.
func (s *FileSource) Document() string {
	if s.export == nil {
		return ""
	}
	return s.export.Document
}
