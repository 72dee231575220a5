// internal/score/store.go
package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound — по ключу ничего не сохранено.
var ErrNotFound = errors.New("score: key not found")

// ErrCorrupt — файл хранилища не разбирается. Следующая запись его перезапишет.
var ErrCorrupt = errors.New("score: store file is corrupt")

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=./mocks/store_mock.go -package=mocks . Store

// Store — хранилище непрозрачных блобов по строковому ключу.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, blob []byte) error
}

// MemoryStore держит блобы в памяти процесса.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), blob...), nil
}

func (s *MemoryStore) Save(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), blob...)
	return nil
}

// FileStore хранит все ключи в одном JSON-файле. Запись атомарная: временный файл и rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blobs, err := s.read()
	if err != nil {
		return nil, err
	}
	blob, ok := blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return blob, nil
}

func (s *FileStore) Save(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blobs, err := s.read()
	if errors.Is(err, ErrCorrupt) {
		log.Printf("Хранилище %s повреждено, будет перезаписано: %v", s.path, err)
		blobs = make(map[string][]byte)
	} else if err != nil {
		return err
	}
	blobs[key] = blob

	data, err := json.Marshal(blobs)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

// read возвращает пустую карту, если файла ещё нет.
func (s *FileStore) read() (map[string][]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string][]byte), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store %s: %w", s.path, err)
	}
	blobs := make(map[string][]byte)
	if len(data) == 0 {
		return blobs, nil
	}
	if err := json.Unmarshal(data, &blobs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, s.path, err)
	}
	return blobs, nil
}
