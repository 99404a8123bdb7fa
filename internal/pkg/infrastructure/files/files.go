// Package files stores firmware binaries on the local filesystem under a
// single root directory, keyed by their stored file name.
package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("file not found")
var ErrInvalidName = errors.New("invalid file name")

//go:generate moq -rm -out files_mock.go . Store
type Store interface {
	Save(name string, r io.Reader) error
	Open(name string) (io.ReadCloser, error)
	Delete(name string) error
	Exists(name string) bool
}

type store struct {
	root string
}

func New(root string) (Store, error) {
	err := os.MkdirAll(root, 0o755)
	if err != nil {
		return nil, fmt.Errorf("could not create firmware directory: %w", err)
	}

	return &store{root: root}, nil
}

func (s *store) path(name string) (string, error) {
	cleaned := filepath.Base(strings.TrimSpace(name))
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "", ErrInvalidName
	}

	return filepath.Join(s.root, cleaned), nil
}

func (s *store) Save(name string, r io.Reader) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return err
	}

	_, err = io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	err = tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func (s *store) Open(name string) (io.ReadCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return f, nil
}

func (s *store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (s *store) Exists(name string) bool {
	path, err := s.path(name)
	if err != nil {
		return false
	}

	_, err = os.Stat(path)
	return err == nil
}
