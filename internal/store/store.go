// Package store persists scalar preferences (the high score) in a small
// msgpack file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// record is the on-disk layout.
type record struct {
	Values map[string]float64 `msgpack:"values"`
}

// File is a Prefs store backed by one file. It is safe for concurrent use,
// so SSH sessions can share it.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]float64
}

// Open loads the store at path. A missing file is an empty store.
func Open(path string) (*File, error) {
	f := &File{path: path, values: map[string]float64{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}

	var rec record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode prefs %s: %w", path, err)
	}
	if rec.Values != nil {
		f.values = rec.Values
	}
	return f, nil
}

// GetFloat returns the value stored under key, or def.
func (f *File) GetFloat(key string, def float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.values[key]; ok {
		return v
	}
	return def
}

// SetFloat stores value under key. It is written on the next Flush.
func (f *File) SetFloat(key string, value float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}

// SetFloatIfGreater stores value under key unless the stored value is at
// least as large. The compare and the write happen under one lock.
func (f *File) SetFloatIfGreater(key string, value float64) (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cur, ok := f.values[key]; ok && cur >= value {
		return cur, false
	}
	f.values[key] = value
	return value, true
}

// Flush writes every value to disk, replacing the file atomically.
func (f *File) Flush() error {
	f.mu.Lock()
	data, err := msgpack.Marshal(&record{Values: f.values})
	f.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
