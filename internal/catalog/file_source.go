package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileSource reads the product list from a YAML or JSON file on disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return "file" }

func (s *FileSource) Fetch(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read catalog file")
	}

	var products []Product
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".json":
		err = json.Unmarshal(data, &products)
	default:
		err = yaml.Unmarshal(data, &products)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "decode catalog file").
			WithDetails(map[string]any{"path": s.path})
	}
	return products, nil
}
