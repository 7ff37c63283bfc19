package types

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// FS is a directory on disk which overrides the embedded assets.
type FS struct {
	fs.FS
	path string
}

func NewFS(dirPath string) (FS, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return FS{}, fmt.Errorf("error open filesystem: %w", err)
	}

	if !info.IsDir() {
		return FS{}, fmt.Errorf("path %s is not a directory", dirPath)
	}

	return FS{os.DirFS(dirPath), dirPath}, nil
}

// IsEmpty reports whether no filesystem is set.
//
//goland:noinspection GoMixedReceiverTypes
func (f *FS) IsEmpty() bool {
	return f == nil || f.FS == nil
}

// String returns the directory path. Embedded filesystems have no path.
//
//goland:noinspection GoMixedReceiverTypes
func (f FS) String() string {
	return f.path
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (f FS) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (f *FS) UnmarshalText(text []byte) error {
	dirFS, err := NewFS(string(text))
	if err != nil {
		return err
	}

	*f = dirFS

	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (f FS) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String()) //nolint:wrapcheck
}
