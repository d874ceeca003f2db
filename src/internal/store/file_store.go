package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/valyala/fasttemplate"

	apperrors "github.com/shopworks/storefront-admin/src/internal/errors"
	"github.com/shopworks/storefront-admin/src/internal/log"
)

// DefaultFileNameTemplate maps a collection name to its backing file name.
const DefaultFileNameTemplate = "{{collection}}.json"

// FileStore persists each collection as a pretty-printed JSON document in a
// data directory. Writes go to a temporary file in the same directory which
// then atomically replaces the target, so readers never see a partial file.
type FileStore struct {
	dir      string
	template *fasttemplate.Template
	locks    collectionLocks
}

// NewFileStore creates a store rooted at dir. fileNameTemplate may reference
// {{collection}}; an empty template selects DefaultFileNameTemplate.
func NewFileStore(dir string, fileNameTemplate string) (*FileStore, error) {
	if fileNameTemplate == "" {
		fileNameTemplate = DefaultFileNameTemplate
	}
	tmpl, err := fasttemplate.NewTemplate(fileNameTemplate, "{{", "}}")
	if err != nil {
		return nil, apperrors.NewConfigError("invalid file name template", err)
	}
	return &FileStore{dir: dir, template: tmpl}, nil
}

// Dir returns the data directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the backing file path of the named collection.
func (s *FileStore) Path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", apperrors.NewBadRequest(fmt.Sprintf("invalid collection name %q", name))
	}
	fileName := s.template.ExecuteString(map[string]interface{}{"collection": name})
	if fileName == "" || filepath.Base(fileName) != fileName {
		return "", apperrors.NewConfigError(fmt.Sprintf("file name template produced invalid name %q", fileName), nil)
	}
	return filepath.Join(s.dir, fileName), nil
}

// Load reads the named collection from disk.
func (s *FileStore) Load(name string) (Collection, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf("Collection %s has no backing file yet: %s", name, path)
			return Collection{}, nil
		}
		return nil, apperrors.NewIOError(fmt.Sprintf("failed to read %s", name), err)
	}

	return decodeCollection(name, content)
}

// Save writes the named collection using write-to-temp then rename.
func (s *FileStore) Save(name string, c Collection) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}

	data, err := encodeCollection(c)
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to encode %s", name), err)
	}

	if err := writeFileAtomic(path, data, 0644); err != nil {
		return apperrors.NewIOError(fmt.Sprintf("failed to save %s", name), err)
	}

	log.Debugf("Saved collection %s (%d records) to %s", name, len(c), path)
	return nil
}

// Update implements Store.
func (s *FileStore) Update(name string, fn func(Collection) error) error {
	return update(s, &s.locks, name, fn)
}

// Replace implements Store.
func (s *FileStore) Replace(name string, c Collection) error {
	return replace(s, &s.locks, name, c)
}

func decodeCollection(name string, content []byte) (Collection, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return Collection{}, nil
	}

	var raw Collection
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, apperrors.NewParseError(fmt.Sprintf("failed to parse %s", name), err)
	}

	c := make(Collection, len(raw))
	for key, value := range raw {
		var buf bytes.Buffer
		if err := json.Compact(&buf, value); err != nil {
			return nil, apperrors.NewParseError(fmt.Sprintf("failed to parse %s record %q", name, key), err)
		}
		c[key] = buf.Bytes()
	}
	return c, nil
}

func encodeCollection(c Collection) ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("flush temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	success = true
	return nil
}
