package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/iburimskiy/draggable-clock/internal/config"
)

var (
	// ErrNoFaces is returned when there is nothing to choose from
	ErrNoFaces = errors.New("no clock faces available")

	// ErrFaceNotFound is returned when a named face has no file
	ErrFaceNotFound = errors.New("clock face not found")
)

// Library is the directory of Clock*.png face images.
type Library struct {
	dir string
}

func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

func (l *Library) Dir() string {
	return l.dir
}

// Path returns the file for a face name.
func (l *Library) Path(name string) string {
	return filepath.Join(l.dir, name+config.FaceExt)
}

// IsFace reports whether a file name matches the face pattern.
func IsFace(fileName string) bool {
	ok, _ := filepath.Match(config.FacePattern, filepath.Base(fileName))
	return ok
}

// List returns the face names, most recently modified first.
func (l *Library) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(l.dir, config.FacePattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list clock faces: %w", err)
	}

	type face struct {
		name string
		mod  time.Time
	}
	faces := make([]face, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		faces = append(faces, face{
			name: strings.TrimSuffix(filepath.Base(m), config.FaceExt),
			mod:  info.ModTime(),
		})
	}

	sort.SliceStable(faces, func(i, j int) bool {
		if !faces[i].mod.Equal(faces[j].mod) {
			return faces[i].mod.After(faces[j].mod)
		}
		return faces[i].name < faces[j].name
	})

	names := make([]string, len(faces))
	for i, f := range faces {
		names[i] = f.name
	}
	return names, nil
}

// Load decodes the named face image.
func (l *Library) Load(name string) (image.Image, error) {
	f, err := os.Open(l.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFaceNotFound, name)
		}
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode clock face %s: %w", name, err)
	}
	return img, nil
}
