package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("utils: archive is empty")

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	// try to assert the compression type from the file extension
	var decoder io.Reader
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("utils: %s: %w", filename, err)
		}
		defer r.Close()
		decoder = r
	case ".xz":
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("utils: %s: %w", filename, err)
		}
		decoder = r
	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("utils: %s: %w", filename, err)
		}
		if len(r.File) == 0 {
			return nil, ErrEmptyArchive
		}
		rc, err := r.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("utils: %s: %w", filename, err)
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("utils: %s: %w", filename, err)
		}
		if len(r.File) == 0 {
			return nil, ErrEmptyArchive
		}
		rc, err := r.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("utils: %s: %w", filename, err)
		}
		defer rc.Close()
		decoder = rc
	default:
		// .gb, .gbc, .bin and anything else is returned as is
		return data, nil
	}

	// read the decompressed data into a byte slice
	data, err = io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("utils: %s: %w", filename, err)
	}
	return data, nil
}
