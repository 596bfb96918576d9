// Package files is the filesystem collaborator of the file endpoint. It decides which path
// a requested name maps to and performs the actual reads and writes.
package files

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsafeName is returned for names that would resolve outside the base directory
	// or to the directory itself.
	ErrUnsafeName = errors.New("file name must be a single path element")
	// ErrNotFound is returned when there is no regular file under the name.
	ErrNotFound = errors.New("no such file")
)

// Storage reads and writes files by name. Implementations must be safe for concurrent use.
type Storage interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
}

// Resolve joins the name with the root. The name must be exactly one path element: no
// separators and neither "." nor "..", so the result can never escape the root.
func Resolve(root, name string) (string, error) {
	switch {
	case len(name) == 0, name == ".", name == "..":
		return "", ErrUnsafeName
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, 0):
		return "", ErrUnsafeName
	}

	return filepath.Join(root, name), nil
}

// Dir is a Storage backed by a directory on the local filesystem. It holds nothing but the
// root, so a single value may be shared between all the connections.
type Dir struct {
	root string
}

func NewDir(root string) Dir {
	return Dir{root: root}
}

func (d Dir) Root() string {
	return d.root
}

// Read returns the whole file contents. Missing files and directories both result in
// ErrNotFound, other failures are returned as is.
func (d Dir) Read(name string) ([]byte, error) {
	path, err := Resolve(d.root, name)
	if err != nil {
		return nil, err
	}

	fd, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, err
	}
	defer fd.Close()

	stat, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	if !stat.Mode().IsRegular() {
		return nil, ErrNotFound
	}

	return io.ReadAll(fd)
}

// Write creates the file or truncates it if it already exists, and writes the data into it.
func (d Dir) Write(name string, data []byte) error {
	path, err := Resolve(d.root, name)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
