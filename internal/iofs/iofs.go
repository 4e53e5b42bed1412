// Package iofs prepares the file system for meigen and writes state files.
package iofs

import (
	"os"
	"path/filepath"

	"github.com/ichinichi/meigen/pkg/config"
	"github.com/ichinichi/meigen/pkg/templates"
)

// EnsureDirs creates config, data and log directories under homeDir.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := EnsureDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates dir with parents if it does not exist.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the documented config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if Exists(configPath) {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(templates.ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// WriteAtomic replaces the file at path with data. The data goes to a
// temporary file in the same directory first and is renamed over path, so
// readers see either the old or the new content.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return WriteFileError(path, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err = f.Write(data); err != nil {
		f.Close()
		return WriteFileError(path, err)
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return WriteFileError(path, err)
	}
	if err = f.Close(); err != nil {
		return WriteFileError(path, err)
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return WriteFileError(path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
