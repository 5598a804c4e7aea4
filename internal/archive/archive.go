// Package archive builds the tar streams the daemon's image build endpoint
// consumes.
package archive

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/moby/patternmatcher"
	"github.com/moby/patternmatcher/ignorefile"
)

// Tar streams the directory as a tar archive, leaving out entries matched by
// the directory's .dockerignore file. The Dockerfile and the .dockerignore
// file itself are always included, even when ignored, because the daemon
// needs them to run the build.
//
// The caller must close the returned reader. Archiving errors surface as
// read errors on it.
func Tar(contextDir, dockerfile string) (io.ReadCloser, error) {
	info, err := os.Stat(contextDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read build context %q: %w", contextDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to read build context %q: not a directory", contextDir)
	}

	excludes, err := readIgnorePatterns(contextDir, dockerfile)
	if err != nil {
		return nil, err
	}

	matcher, err := patternmatcher.New(excludes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse .dockerignore patterns: %w", err)
	}

	pr, pw := io.Pipe()
	go func() {
		tw := tar.NewWriter(pw)

		err := writeTree(tw, contextDir, matcher)
		if closeErr := tw.Close(); err == nil {
			err = closeErr
		}

		if err != nil {
			pw.CloseWithError(fmt.Errorf("failed to archive build context %q: %w", contextDir, err))
		} else {
			pw.Close()
		}
	}()

	return pr, nil
}

// readIgnorePatterns loads the context's .dockerignore file. Patterns that
// would exclude the build files are countered with re-include patterns.
func readIgnorePatterns(contextDir, dockerfile string) ([]string, error) {
	file, err := os.Open(filepath.Join(contextDir, ".dockerignore"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open .dockerignore in %q: %w", contextDir, err)
	}
	defer file.Close()

	excludes, err := ignorefile.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read .dockerignore in %q: %w", contextDir, err)
	}

	if matched, _ := patternmatcher.MatchesOrParentMatches(".dockerignore", excludes); matched {
		excludes = append(excludes, "!.dockerignore")
	}
	if matched, _ := patternmatcher.MatchesOrParentMatches(dockerfile, excludes); matched {
		excludes = append(excludes, "!"+dockerfile)
	}

	return excludes, nil
}

func writeTree(tw *tar.Writer, contextDir string, matcher *patternmatcher.PatternMatcher) error {
	return filepath.Walk(contextDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(contextDir, path)
		if err != nil {
			return fmt.Errorf("failed to resolve path %q: %w", path, err)
		}
		if relPath == "." {
			return nil
		}

		name := filepath.ToSlash(relPath)

		excluded, err := matcher.MatchesOrParentMatches(name)
		if err != nil {
			return fmt.Errorf("failed to match %q against .dockerignore: %w", name, err)
		}
		if excluded {
			// A descendant may still be re-included by a negated
			// pattern, so the directory is only skipped outright when
			// no such pattern exists.
			if info.IsDir() && !matcher.Exclusions() {
				return filepath.SkipDir
			}
			return nil
		}

		var link string
		if info.Mode()&os.ModeSymlink != 0 {
			link, err = os.Readlink(path)
			if err != nil {
				return fmt.Errorf("failed to read symlink %q: %w", path, err)
			}
		} else if !info.Mode().IsRegular() && !info.IsDir() {
			return nil
		}

		header, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return fmt.Errorf("failed to build header for %q: %w", name, err)
		}
		header.Name = name
		if info.IsDir() {
			header.Name += "/"
		}

		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write header for %q: %w", name, err)
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %q: %w", path, err)
		}
		defer file.Close()

		if _, err := io.Copy(tw, file); err != nil {
			return fmt.Errorf("failed to write %q: %w", name, err)
		}

		return nil
	})
}

// File returns a tar archive holding a single file with the given name and
// content.
func File(name string, content []byte) (io.Reader, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	header := &tar.Header{
		Name:    name,
		Mode:    0o600,
		Size:    int64(len(content)),
		ModTime: time.Now(),
	}
	if err := tw.WriteHeader(header); err != nil {
		return nil, fmt.Errorf("failed to write archive header for %q: %w", name, err)
	}
	if _, err := tw.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write %q to archive: %w", name, err)
	}
	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive of %q: %w", name, err)
	}

	return &buf, nil
}
