package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	apperrors "github.com/shopworks/storefront-admin/src/internal/errors"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "data"), "")
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return s
}

func TestFileStore_LoadMissingIsEmpty(t *testing.T) {
	s := newTestFileStore(t)

	c, err := s.Load("products")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c == nil || len(c) != 0 {
		t.Errorf("Expected empty non-nil collection, got %#v", c)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := newTestFileStore(t)

	tests := []struct {
		name string
		c    Collection
	}{
		{"empty", Collection{}},
		{"single", Collection{"p1": json.RawMessage(`{"name":"Bead A","price":9.99}`)}},
		{"nested", Collection{
			"home":  json.RawMessage(`{"hero":{"title":"Hi","tags":["a","b"]},"n":null}`),
			"about": json.RawMessage(`"plain string"`),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Save("content", tt.c); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := s.Load("content")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.c) {
				t.Errorf("Load() = %s, want %s", dump(got), dump(tt.c))
			}
		})
	}
}

func TestFileStore_SaveIsPrettyPrinted(t *testing.T) {
	s := newTestFileStore(t)

	if err := s.Save("products", Collection{"p1": json.RawMessage(`{"name":"A"}`)}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	path, _ := s.Path("products")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if !strings.Contains(string(content), "\n  \"p1\": {\n    \"name\": \"A\"") {
		t.Errorf("Expected indented JSON, got:\n%s", content)
	}
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	s := newTestFileStore(t)

	for i := 0; i < 3; i++ {
		if err := s.Save("products", Collection{fmt.Sprintf("p%d", i): json.RawMessage(`{}`)}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "products.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only products.json in data dir, got %v", names)
	}
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	s := newTestFileStore(t)
	path, _ := s.Path("content")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"home": {`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load("content")
	if apperrors.CodeOf(err) != apperrors.ErrCodeParse {
		t.Errorf("Expected PARSE_FAILURE, got %v", err)
	}
}

func TestFileStore_ReplaceCorruptFile(t *testing.T) {
	s := newTestFileStore(t)
	path, _ := s.Path("content")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.Replace("content", Collection{}); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	c, err := s.Load("content")
	if err != nil {
		t.Fatalf("Load() after Replace error = %v", err)
	}
	if len(c) != 0 {
		t.Errorf("Expected empty collection, got %s", dump(c))
	}
}

func TestFileStore_LoadEmptyFile(t *testing.T) {
	s := newTestFileStore(t)
	path, _ := s.Path("content")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := s.Load("content")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c) != 0 {
		t.Errorf("Expected empty collection, got %v", c)
	}
}

func TestFileStore_LoadUnreadable(t *testing.T) {
	s := newTestFileStore(t)
	path, _ := s.Path("content")

	// A directory where the file should be cannot be read as a file.
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load("content")
	if apperrors.CodeOf(err) != apperrors.ErrCodeIO {
		t.Errorf("Expected IO_FAILURE, got %v", err)
	}
}

func TestFileStore_Path(t *testing.T) {
	s, err := NewFileStore("/var/lib/shop", "store-{{collection}}.json")
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	path, err := s.Path("products")
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if path != filepath.Join("/var/lib/shop", "store-products.json") {
		t.Errorf("Path() = %s", path)
	}

	for _, bad := range []string{"", "..", "../etc", `a\b`} {
		if _, err := s.Path(bad); err == nil {
			t.Errorf("Expected error for collection name %q", bad)
		}
	}
}

func TestFileStore_UpdateSerializesWriters(t *testing.T) {
	s := newTestFileStore(t)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.Update("products", func(c Collection) error {
				c[fmt.Sprintf("p%02d", i)] = json.RawMessage(`{}`)
				return nil
			})
			if err != nil {
				t.Errorf("Update() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	c, err := s.Load("products")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c) != writers {
		t.Errorf("Expected %d records after concurrent updates, got %d", writers, len(c))
	}
}

func TestFileStore_UpdateErrorSkipsSave(t *testing.T) {
	s := newTestFileStore(t)
	if err := s.Save("products", Collection{"p1": json.RawMessage(`{}`)}); err != nil {
		t.Fatal(err)
	}

	sentinel := errors.New("abort")
	err := s.Update("products", func(c Collection) error {
		delete(c, "p1")
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Expected sentinel error, got %v", err)
	}

	c, _ := s.Load("products")
	if _, ok := c["p1"]; !ok {
		t.Error("Expected collection to be unchanged after aborted update")
	}
}

func dump(c Collection) string {
	data, _ := json.Marshal(c)
	return string(data)
}
