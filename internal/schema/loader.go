// internal/schema/loader.go
package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Extensions lists the schema file extensions in lookup order
var Extensions = []string{".toml", ".yaml", ".yml"}

// document is the on-disk schema format. Only columns is recognised.
type document struct {
	Columns []string `toml:"columns" yaml:"columns"`
}

// Resolve returns the schema file path for a table inside dir.
// The first existing file in Extensions order wins.
func Resolve(dir, name string) (string, error) {
	if name == "" {
		return "", errors.New("table name is empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("table name %q must not contain path separators", name)
	}

	var tried []string
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", wrapLoadError(path, err)
		}
		tried = append(tried, filepath.Base(path))
	}

	return "", wrapLoadError(dir, fmt.Errorf("%w for table %q (looked for %s)", ErrNotFound, name, strings.Join(tried, ", ")))
}

// Load resolves and parses the schema of table name from dir
func Load(dir, name string) (Table, error) {
	path, err := Resolve(dir, name)
	if err != nil {
		return Table{}, err
	}
	return LoadFile(path, name)
}

// LoadFile parses a schema document. The format follows the file extension.
func LoadFile(path, name string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, wrapLoadError(path, err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return Table{}, wrapLoadError(path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			log.Printf("schema %s: ignoring unknown keys %v", path, undecoded)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Table{}, wrapLoadError(path, err)
		}
	default:
		return Table{}, wrapLoadError(path, fmt.Errorf("unsupported schema format %q", filepath.Ext(path)))
	}

	t, err := New(name, doc.Columns)
	if err != nil {
		return Table{}, wrapLoadError(path, err)
	}

	log.Printf("schema %s: loaded %d columns for %s", path, t.Len(), name)
	return t, nil
}
