package top

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// parseIncludeArg returns the file name in the argument of an #include
// directive, which must be between double or single quotes.
func parseIncludeArg(arg string) (string, bool) {
	if arg == "" {
		return "", false
	}
	q := arg[0]
	if q != '"' && q != '\'' {
		return "", false
	}
	end := strings.IndexByte(arg[1:], q)
	if end <= 0 {
		return "", false
	}
	return arg[1 : 1+end], true
}

// includePath resolves the name given in an #include found in the file current.
// Relative names are taken from the directory of current. If there is no such file,
// the include directories in the options are tried, in order. If the file is not
// found anywhere, the path next to current is returned, so opening it reports
// the error for the expected location.
func includePath(current, name string, dirs []string) string {
	if filepath.IsAbs(name) {
		return name
	}
	cand := filepath.Join(filepath.Dir(current), name)
	if len(dirs) == 0 {
		return cand
	}
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	for _, d := range dirs {
		p := filepath.Join(d, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return cand
}

// multiCloser closes a decompressor and the file under it.
type multiCloser struct {
	io.Reader
	closers []func() error
}

func (m *multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// openTopology opens a topology file for reading. Files ending in .gz or
// .zst are decompressed on the fly.
func openTopology(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &multiCloser{gz, []func() error{gz.Close, f.Close}}, nil
	case ".zst":
		zs, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		//*zstd.Decoder's Close doesn't return an error.
		zclose := func() error { zs.Close(); return nil }
		return &multiCloser{zs, []func() error{zclose, f.Close}}, nil
	}
	return f, nil
}
