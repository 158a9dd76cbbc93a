/*
Package templatetest exposes a mock fs.FS that implements basic file operations.
Used in unit tests for the purposes of avoiding the use of testdata/ directories when unit testing template rendering.

Cribbed from Mark Bates: https://www.gopherguides.com/articles/golang-1.16-io-fs-improve-test-performance
*/
package templatetest

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/xy-planning-network/conneg/http/template"
)

// NewParser constructs a template.Parser with the mocked files.
func NewParser(tmpls ...FileMocker) template.Parser {
	return template.NewParser(template.WithFS(NewMockFS(tmpls...)))
}

type FileMocker interface {
	fs.File
	fs.FileInfo
	Bytes() []byte
}

type MockFS []FileMocker

func NewMockFS(tmpls ...FileMocker) fs.FS { return append(MockFS{}, tmpls...) }

// Glob checks whether the pattern matches the file after removing all directory paths from
// the respective parts.
//
// Buyer beware: Glob is a simplistic implementation of fs.GlobFS.
//
// i.e., pattern: some/long/path/*
// will match all of the following
// - some/long/path/myfile.txt
// - some/long/otherfile.txt
// - totally/different/tree/somefile.txt
// - /rootfile.txt
// ... etc.
func (mfs MockFS) Glob(pattern string) ([]string, error) {
	_, pattern = path.Split(pattern)
	matches := []string{}
	for _, f := range mfs {
		n := f.Name()
		_, filename := path.Split(n)
		matched, err := path.Match(pattern, filename)
		if err != nil {
			return nil, err
		}
		if matched {
			matches = append(matches, n)
		}
	}

	return matches, nil
}

// Open returns a fresh reader over the named file,
// so the same file may be opened any number of times.
func (mfs MockFS) Open(name string) (fs.File, error) {
	for _, f := range mfs {
		if f.Name() == name {
			return &openFile{FileMocker: f, r: bytes.NewReader(f.Bytes())}, nil
		}
	}

	return nil, &fs.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
}

type openFile struct {
	FileMocker
	r *bytes.Reader
}

func (o *openFile) Read(p []byte) (int, error) { return o.r.Read(p) }

type MockFile struct {
	data    []byte
	isDir   bool
	modTime time.Time
	mode    fs.FileMode
	name    string
	sys     any
}

func NewMockFile(name string, data []byte) FileMocker {
	return &MockFile{data: data, name: name}
}

func (m *MockFile) Bytes() []byte              { return m.data }
func (m *MockFile) Close() error               { return nil }
func (m *MockFile) Name() string               { return m.name }
func (m *MockFile) IsDir() bool                { return m.isDir }
func (m *MockFile) Info() (fs.FileInfo, error) { return m.Stat() }
func (m *MockFile) Mode() os.FileMode          { return m.mode }
func (m *MockFile) ModTime() time.Time         { return m.modTime }
func (m *MockFile) Size() int64                { return int64(len(m.data)) }
func (m *MockFile) Stat() (fs.FileInfo, error) { return m, nil }
func (m *MockFile) Sys() any                   { return m.sys }
func (m *MockFile) Type() fs.FileMode          { return m.Mode().Type() }
func (m *MockFile) Read(p []byte) (int, error) { return bytes.NewReader(m.data).Read(p) }
