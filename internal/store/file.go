package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// File persists keys in a single JSON file, one object with string values.
// Every operation reads the whole file and Set writes it back whole. The
// file is shared state between CLI invocations; concurrent writers from
// two processes are not guarded against.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a file-backed store at path. The file is created lazily
// on the first successful Set.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the location of the backing file.
func (f *File) Path() string { return f.path }

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.load()
	v, ok := values[key]
	return v, ok
}

func (f *File) Set(key, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.load()
	values[key] = value
	return f.save(values)
}

func (f *File) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.load()
	if _, ok := values[key]; !ok {
		return
	}
	delete(values, key)
	f.save(values)
}

// load reads the backing file. A missing or unreadable file and malformed
// JSON all yield an empty map.
func (f *File) load() map[string]string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return map[string]string{}
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return map[string]string{}
	}
	return values
}

func (f *File) save(values map[string]string) bool {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return false
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false
		}
	}

	return os.WriteFile(f.path, data, 0o644) == nil
}
