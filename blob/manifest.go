// Package blob provides asynchronous loading of file contents into a fixed
// table of slots, driven by a non-blocking host-side pump.
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// manifest schema, e.g.: {"blobs": ["textures/a.bin", "textures/b.bin"]}
type manifest struct {
	Blobs []string `json:"blobs" yaml:"blobs"`
}

type ErrUnknownFormat struct {
	Path string
}

func (e *ErrUnknownFormat) Error() string {
	return fmt.Sprintf("blob: unrecognized manifest format %q (expecting .json, .yml, or .yaml)", e.Path)
}

var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: false,
	DisallowUnknownFields:  true,
	SortMapKeys:            true,
}.Froze()

// FromManifest constructs a loader from a declarative slot list; the format
// is sniffed from the file extension.
func FromManifest(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessage(err, "read manifest failed")
	}
	var m manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = jsonAPI.Unmarshal(data, &m)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &m)
	default:
		return nil, &ErrUnknownFormat{Path: path}
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "parse manifest %q failed", path)
	}
	return New(m.Blobs), nil
}
