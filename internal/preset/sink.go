package preset

import (
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
)

// PresetsDir is the directory below the output root Shotcut reads presets from
const PresetsDir = "presets"

// Artifact is one rendered preset
type Artifact struct {
	Family  types.PresetFamily
	Name    string
	Content string
	Rect    geometry.Rectangle
	Frame   geometry.Frame
}

// FileName is the percent-encoded name used on disk
func (a Artifact) FileName() string {
	return url.QueryEscape(a.Name)
}

// Sink receives rendered presets and returns where each one ended up
type Sink interface {
	Put(a Artifact) (string, error)
}

// FileSink writes presets to <Root>/presets/<family>/<encoded name>,
// overwriting existing files
type FileSink struct {
	Root string
}

func NewFileSink(root string) *FileSink {
	return &FileSink{Root: root}
}

// Dir returns the directory presets of a family are written to
func (s *FileSink) Dir(family types.PresetFamily) string {
	return filepath.Join(s.Root, PresetsDir, string(family))
}

func (s *FileSink) Put(a Artifact) (string, error) {
	dir := s.Dir(a.Family)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	p := filepath.Join(dir, a.FileName())
	if err := os.WriteFile(p, []byte(a.Content), 0644); err != nil {
		return "", &IOError{Op: "write", Path: p, Err: err}
	}
	return p, nil
}

// MemorySink keeps presets in memory, in the order they were produced
type MemorySink struct {
	Artifacts []Artifact
}

func (s *MemorySink) Put(a Artifact) (string, error) {
	s.Artifacts = append(s.Artifacts, a)
	return path.Join(PresetsDir, string(a.Family), a.FileName()), nil
}

// Names returns the artifact names in order
func (s *MemorySink) Names() []string {
	names := make([]string, 0, len(s.Artifacts))
	for _, a := range s.Artifacts {
		names = append(names, a.Name)
	}
	return names
}
