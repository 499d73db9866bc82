package project

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/src/add.cairo", []byte("fn main() {}"), 0o644))
	require.NoError(t, afero.WriteFile(memFs, "/proj/cairo_project.toml", []byte("[crate_roots]\nproj = \"src\"\n"), 0o644))
	require.NoError(t, afero.WriteFile(memFs, "/scarb/Scarb.toml", []byte("[package]\nname = \"scarb\"\n"), 0o644))
	require.NoError(t, memFs.MkdirAll("/empty", 0o755))

	t.Run("Single file", func(t *testing.T) {
		p, err := Discover(memFs, "/src/add.cairo")
		require.NoError(t, err)
		assert.Equal(t, Project{Path: "/src/add.cairo", Kind: KindFile}, p)
	})

	t.Run("Project directory", func(t *testing.T) {
		p, err := Discover(memFs, "/proj")
		require.NoError(t, err)
		assert.Equal(t, KindProject, p.Kind)
		assert.Equal(t, filepath.Join("/proj", "cairo_project.toml"), p.Manifest)
	})

	t.Run("Scarb manifest", func(t *testing.T) {
		p, err := Discover(memFs, "/scarb")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/scarb", "Scarb.toml"), p.Manifest)
	})

	t.Run("Directory without manifest", func(t *testing.T) {
		_, err := Discover(memFs, "/empty")
		assert.ErrorIs(t, err, domain.ErrProjectSetup)
	})

	t.Run("Missing path", func(t *testing.T) {
		_, err := Discover(memFs, "/nope.cairo")
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Equal(t, domain.CategoryIO, domain.Classify(err))
	})
}
