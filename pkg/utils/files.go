package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
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

	r := bytes.NewReader(data)
	var decoder io.Reader

	// try to assert the compression type from the file extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		decoder, err = gzip.NewReader(r)
	case ".xz":
		decoder, err = xz.NewReader(r)
	case ".zip":
		var zr *zip.Reader
		if zr, err = zip.NewReader(r, r.Size()); err != nil {
			break
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("%s: %w", filename, ErrEmptyArchive)
		}
		// read the first file in the zip file
		decoder, err = zr.File[0].Open()
	case ".7z":
		var sr *sevenzip.Reader
		if sr, err = sevenzip.NewReader(r, r.Size()); err != nil {
			break
		}
		if len(sr.File) == 0 {
			return nil, fmt.Errorf("%s: %w", filename, ErrEmptyArchive)
		}
		// read the first file in the archive
		decoder, err = sr.File[0].Open()
	default:
		// .gb, .gbc, .bin or no extension
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if c, ok := decoder.(io.Closer); ok {
		defer c.Close()
	}

	// read the decompressed data into a byte slice
	data, err = io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("%s: decompressing: %w", filename, err)
	}
	return data, nil
}
