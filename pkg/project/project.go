// Package project recognizes what a compile path points at before the compiler runs.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/spf13/afero"
)

// Kind tells how the compiler should treat a path.
type Kind string

const (
	// KindFile is a single source file compiled as its own crate.
	KindFile Kind = "file"
	// KindProject is a directory holding a project manifest.
	KindProject Kind = "project"
)

// ManifestNames are the project manifests recognized in a directory, in lookup order.
var ManifestNames = []string{"cairo_project.toml", "Scarb.toml"}

// Project is a resolved compile target.
type Project struct {
	Path     string
	Kind     Kind
	Manifest string // empty for KindFile
}

// Discover resolves path into a Project.
// A missing path keeps its *fs.PathError; a directory without a manifest is ErrProjectSetup.
func Discover(fs afero.Fs, path string) (Project, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return Project{}, err
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return Project{}, fmt.Errorf("%w: %s is not a regular file", domain.ErrProjectSetup, path)
		}
		return Project{Path: path, Kind: KindFile}, nil
	}

	for _, name := range ManifestNames {
		manifest := filepath.Join(path, name)
		if ok, _ := afero.Exists(fs, manifest); ok {
			return Project{Path: path, Kind: KindProject, Manifest: manifest}, nil
		}
	}
	return Project{}, fmt.Errorf("%w: %s has no project manifest (looked for %v)", domain.ErrProjectSetup, path, ManifestNames)
}
