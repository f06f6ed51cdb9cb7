// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imageasset

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// File is a user-selected image: a name, a declared content type and size,
// and a way to read the bytes.
type File interface {
	Name() string
	ContentType() string
	Size() int64
	Open() (io.ReadCloser, error)
}

type diskFile struct {
	path        string
	contentType string
	size        int64
}

// FromPath describes the file at path. The content type comes from the file
// extension; when the extension is unknown the first 512 bytes are sniffed.
// A path that cannot be read yields an [*AssetError] wrapping ErrRead.
func FromPath(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, readError(fmt.Errorf("stat image file: %w", err))
	}
	if info.IsDir() {
		return nil, readError(fmt.Errorf("stat image file: %s is a directory", path))
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		contentType, err = sniff(path)
		if err != nil {
			return nil, readError(err)
		}
	}
	if i := strings.Index(contentType, ";"); i != -1 {
		contentType = strings.TrimSpace(contentType[:i])
	}

	return &diskFile{path: path, contentType: contentType, size: info.Size()}, nil
}

func (f *diskFile) Name() string        { return filepath.Base(f.path) }
func (f *diskFile) ContentType() string { return f.contentType }
func (f *diskFile) Size() int64         { return f.size }

func (f *diskFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

func sniff(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image file: %w", err)
	}
	defer fh.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(fh, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read image header: %w", err)
	}
	return http.DetectContentType(head[:n]), nil
}

// memFile is an in-memory File, used by tests and by callers that already
// hold the bytes.
type memFile struct {
	name        string
	contentType string
	data        []byte
}

// FromBytes wraps data as a File with the given name and content type.
func FromBytes(name, contentType string, data []byte) File {
	return &memFile{name: name, contentType: contentType, data: data}
}

func (f *memFile) Name() string        { return f.name }
func (f *memFile) ContentType() string { return f.contentType }
func (f *memFile) Size() int64         { return int64(len(f.data)) }

func (f *memFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}
