package kvstore

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

type diskStore struct {
	d *diskv.Diskv
}

// NewDisk creates a Store persisted as one file per key under basePath.
func NewDisk(basePath string) (Store, error) {
	if basePath == "" {
		return nil, errors.New("kvstore: base path is required")
	}
	return &diskStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
	})}, nil
}

func (s *diskStore) Get(key string) (string, bool, error) {
	if !ValidKey(key) {
		return "", false, ErrInvalidKey
	}
	val, err := s.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kvstore: read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (s *diskStore) Set(key, value string) error {
	if !ValidKey(key) {
		return ErrInvalidKey
	}
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("kvstore: write %s: %w", key, err)
	}
	return nil
}
