/*
Package filecheck provides argument checks for paths to files and directories.

Each check has a variant that operates on the OS file system, and one suffixed with FS that operates on any [fs.FS].
Paths given to the FS variants must satisfy [fs.ValidPath].

A check passing doesn't guarantee that the file will still be in the same state when it's used, so these are best for validating input early and producing clear error messages.
*/
package filecheck

import (
	"errors"
	"io/fs"
	"os"

	"github.com/saylorsolutions/argx/check"
)

type source interface {
	stat(path string) (fs.FileInfo, error)
	open(path string) (fs.File, error)
	validate(argName, path string) error
}

type osSource struct{}

func (osSource) stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (osSource) open(path string) (fs.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (osSource) validate(argName, path string) error {
	if len(path) == 0 {
		return check.Fail(argName, check.ErrEmpty, "path must not be empty")
	}
	return nil
}

type fsSource struct {
	fsys fs.FS
}

func (s fsSource) stat(path string) (fs.FileInfo, error) {
	return fs.Stat(s.fsys, path)
}

func (s fsSource) open(path string) (fs.File, error) {
	return s.fsys.Open(path)
}

func (s fsSource) validate(argName, path string) error {
	if s.fsys == nil {
		return check.Fail(argName, check.ErrNil, "file system must not be nil")
	}
	if len(path) == 0 {
		return check.Fail(argName, check.ErrEmpty, "path must not be empty")
	}
	if !fs.ValidPath(path) {
		return check.Fail(argName, check.ErrFormat, "path %q is not a valid file system path", path)
	}
	return nil
}

func stat(src source, argName, path string) (fs.FileInfo, error) {
	if err := src.validate(argName, path); err != nil {
		return nil, err
	}
	info, err := src.stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, check.Wrap(argName, check.ErrNotExist, err, "must exist")
		}
		return nil, check.Wrap(argName, check.ErrArgument, err, "unable to stat %q", path)
	}
	return info, nil
}

func exists(src source, argName, path string) (string, error) {
	_, err := stat(src, argName, path)
	return path, err
}

func notExists(src source, argName, path string) (string, error) {
	_, err := stat(src, argName, path)
	switch {
	case err == nil:
		return path, check.Fail(argName, check.ErrExist, "path %q already exists", path)
	case errors.Is(err, check.ErrNotExist):
		return path, nil
	default:
		return path, err
	}
}

func isDir(src source, argName, path string) (string, error) {
	info, err := stat(src, argName, path)
	if err != nil {
		return path, err
	}
	if !info.IsDir() {
		return path, check.Fail(argName, check.ErrNotDir, "path %q is not a directory", path)
	}
	return path, nil
}

func isFile(src source, argName, path string) (string, error) {
	info, err := stat(src, argName, path)
	if err != nil {
		return path, err
	}
	if !info.Mode().IsRegular() {
		return path, check.Fail(argName, check.ErrNotFile, "path %q is not a regular file", path)
	}
	return path, nil
}

func notEmptyFile(src source, argName, path string) (string, error) {
	info, err := stat(src, argName, path)
	if err != nil {
		return path, err
	}
	if !info.Mode().IsRegular() {
		return path, check.Fail(argName, check.ErrNotFile, "path %q is not a regular file", path)
	}
	if info.Size() == 0 {
		return path, check.Fail(argName, check.ErrEmpty, "file %q must not be empty", path)
	}
	return path, nil
}

func readable(src source, argName, path string) (string, error) {
	if err := src.validate(argName, path); err != nil {
		return path, err
	}
	f, err := src.open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, check.Wrap(argName, check.ErrNotExist, err, "must exist")
		}
		return path, check.Wrap(argName, check.ErrArgument, err, "path %q is not readable", path)
	}
	_ = f.Close()
	return path, nil
}

// Exists validates that path exists.
func Exists(argName, path string) (string, error) {
	return exists(osSource{}, argName, path)
}

// ExistsFS validates that path exists in fsys.
func ExistsFS(fsys fs.FS, argName, path string) (string, error) {
	return exists(fsSource{fsys}, argName, path)
}

// NotExists validates that nothing exists at path, as when it will be used to create a new file.
func NotExists(argName, path string) (string, error) {
	return notExists(osSource{}, argName, path)
}

// NotExistsFS validates that nothing exists at path in fsys.
func NotExistsFS(fsys fs.FS, argName, path string) (string, error) {
	return notExists(fsSource{fsys}, argName, path)
}

// IsDir validates that path exists and is a directory.
func IsDir(argName, path string) (string, error) {
	return isDir(osSource{}, argName, path)
}

// IsDirFS validates that path exists in fsys and is a directory.
func IsDirFS(fsys fs.FS, argName, path string) (string, error) {
	return isDir(fsSource{fsys}, argName, path)
}

// IsFile validates that path exists and is a regular file.
// Symlinks are followed.
func IsFile(argName, path string) (string, error) {
	return isFile(osSource{}, argName, path)
}

// IsFileFS validates that path exists in fsys and is a regular file.
func IsFileFS(fsys fs.FS, argName, path string) (string, error) {
	return isFile(fsSource{fsys}, argName, path)
}

// NotEmptyFile validates that path is a regular file with a non-zero size.
func NotEmptyFile(argName, path string) (string, error) {
	return notEmptyFile(osSource{}, argName, path)
}

// NotEmptyFileFS validates that path is a regular file in fsys with a non-zero size.
func NotEmptyFileFS(fsys fs.FS, argName, path string) (string, error) {
	return notEmptyFile(fsSource{fsys}, argName, path)
}

// Readable validates that path can be opened for reading.
func Readable(argName, path string) (string, error) {
	return readable(osSource{}, argName, path)
}

// ReadableFS validates that path can be opened for reading in fsys.
func ReadableFS(fsys fs.FS, argName, path string) (string, error) {
	return readable(fsSource{fsys}, argName, path)
}
