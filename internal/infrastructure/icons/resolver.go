// Package icons serves the embedded die icons and writes them to disk for
// launcher hosts that can only reference icons by file path.
package icons

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/doeshing/diceroll-go/assets"
	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/pkg/filesystem"
	"github.com/doeshing/diceroll-go/internal/ports"
)

// Resolver maps dice to icons from an fs.FS and materializes them under dir.
type Resolver struct {
	files fs.FS
	root  string
	dir   string
}

// NewResolver uses the embedded icons. An empty dir defaults to ~/.diceroll/icons.
func NewResolver(dir string) *Resolver {
	if dir == "" {
		dir = filepath.Join(filesystem.UserHomeDir(), domain.DefaultConfigDir, domain.DefaultIconsSubdir)
	}
	return &Resolver{files: assets.Icons, root: assets.IconsRoot, dir: dir}
}

// Dir returns the directory icons are written to.
func (r *Resolver) Dir() string {
	return r.dir
}

// Name returns "d<sides>" when an icon exists for that die, else domain.IconFallback.
func (r *Resolver) Name(sides int) string {
	name := "d" + strconv.Itoa(sides)
	if r.exists(name) {
		return name
	}
	return domain.IconFallback
}

// Names lists every available icon, sorted.
func (r *Resolver) Names() ([]string, error) {
	entries, err := fs.ReadDir(r.files, r.root)
	if err != nil {
		return nil, fmt.Errorf("icons: list: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".svg") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	sort.Strings(names)
	return names, nil
}

// Path writes the named icon into the icon directory if it is missing or stale
// and returns its path.
func (r *Resolver) Path(name string) (string, error) {
	if !r.exists(name) {
		return "", fmt.Errorf("icons: unknown icon %s", name)
	}
	data, err := fs.ReadFile(r.files, r.embeddedPath(name))
	if err != nil {
		return "", fmt.Errorf("icons: read %s: %w", name, err)
	}

	target := filepath.Join(r.dir, name+".svg")
	if current, err := os.ReadFile(target); err == nil && bytes.Equal(current, data) {
		return target, nil
	}
	if err := os.MkdirAll(r.dir, domain.DirectoryPermissions); err != nil {
		return "", fmt.Errorf("icons: ensure dir: %w", err)
	}
	if err := os.WriteFile(target, data, domain.IconFilePermissions); err != nil {
		return "", fmt.Errorf("icons: write %s: %w", name, err)
	}
	return target, nil
}

// Materialize writes every icon and returns their paths.
func (r *Resolver) Materialize() ([]string, error) {
	names, err := r.Names()
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p, err := r.Path(name)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func (r *Resolver) exists(name string) bool {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return false
	}
	_, err := fs.Stat(r.files, r.embeddedPath(name))
	return err == nil
}

func (r *Resolver) embeddedPath(name string) string {
	return path.Join(r.root, name+".svg")
}

var _ ports.IconResolver = (*Resolver)(nil)
