// Package assets unpacks the bundled asset archive and parses the sprite sheet.
package assets

import (
	"archive/zip"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

//go:embed data/assets.zip
var archive []byte

// Sound identifies a one-shot sound clip in the archive.
type Sound string

// Sounds shipped with the game.
const (
	SoundFlap  Sound = "flap"
	SoundScore Sound = "score"
	SoundCrash Sound = "crash"
)

// AllSounds lists every clip the archive must provide.
var AllSounds = []Sound{SoundFlap, SoundScore, SoundCrash}

// Bundle is an unpacked copy of the asset archive on disk.
type Bundle struct {
	dir string
}

// Unpack extracts the embedded archive into dir.
// An empty dir creates a fresh scratch directory.
func Unpack(dir string) (*Bundle, error) {
	return unpack(archive, dir)
}

func unpack(data []byte, dir string) (*Bundle, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open archive: %w", err)
	}

	created := false
	if dir == "" {
		tmp, err := os.MkdirTemp("", "flappy-dragon-*")
		if err != nil {
			return nil, fmt.Errorf("assets: cannot create scratch directory: %w", err)
		}
		dir = tmp
		created = true
	}

	b, err := extractAll(zr, dir)
	if err != nil {
		if created {
			//nolint:errcheck // Best-effort cleanup, the extraction error is returned
			os.RemoveAll(dir)
		}
		return nil, err
	}
	return b, nil
}

func extractAll(zr *zip.Reader, dir string) (*Bundle, error) {
	for _, f := range zr.File {
		if !filepath.IsLocal(f.Name) {
			return nil, fmt.Errorf("assets: archive entry %q escapes the target directory", f.Name)
		}
		target := filepath.Join(dir, filepath.FromSlash(f.Name))

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, fmt.Errorf("assets: cannot create %s: %w", target, err)
			}
			continue
		}
		if err := extractFile(f, target); err != nil {
			return nil, err
		}
	}

	b := &Bundle{dir: dir}
	for _, s := range AllSounds {
		if _, err := os.Stat(b.SoundPath(s)); err != nil {
			return nil, fmt.Errorf("assets: missing sound %q: %w", s, err)
		}
	}
	return b, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("assets: cannot create %s: %w", filepath.Dir(target), err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("assets: cannot read %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("assets: cannot write %s: %w", target, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("assets: cannot extract %s: %w", f.Name, err)
	}
	return out.Close()
}

// Dir returns the directory the archive was unpacked into.
func (b *Bundle) Dir() string {
	return b.dir
}

// SoundPath returns the on-disk path of a sound clip.
func (b *Bundle) SoundPath(s Sound) string {
	return filepath.Join(b.dir, "sounds", string(s)+".wav")
}

// SoundPaths returns the paths of every shipped clip.
func (b *Bundle) SoundPaths() map[Sound]string {
	paths := make(map[Sound]string, len(AllSounds))
	for _, s := range AllSounds {
		paths[s] = b.SoundPath(s)
	}
	return paths
}

// LoadSprite reads and parses sprites/<name>.yaml.
func (b *Bundle) LoadSprite(name string) (*Sprite, error) {
	path := filepath.Join(b.dir, "sprites", name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read sprite %q: %w", name, err)
	}
	s, err := ParseSprite(data)
	if err != nil {
		return nil, fmt.Errorf("assets: sprite %q: %w", name, err)
	}
	return s, nil
}

// Cleanup removes the unpacked files.
func (b *Bundle) Cleanup() error {
	return os.RemoveAll(b.dir)
}
