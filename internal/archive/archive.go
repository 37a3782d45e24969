// Package archive bundles generated mesh files and their manifest into a
// gzip-compressed tar archive and relocates them into the output directory.
package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/philipparndt/boxgen/internal/box"
)

// WriteManifest writes the plain-text parameter manifest to path. The
// content is byte-deterministic for identical parameters.
func WriteManifest(path string, p box.Params) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "Box and Lid STL files created with specified dimensions.")
	fmt.Fprintf(f, "Length: %s, Width: %s, Height: %s\n",
		box.FormatDim(p.Length), box.FormatDim(p.Width), box.FormatDim(p.Height))
	fmt.Fprintf(f, "Wall Thickness: %s, Lid Overlap: %s, Lid Height: %s\n",
		box.FormatDim(p.Thickness), box.FormatDim(p.Overlap), box.FormatDim(p.LidHeight))

	if err := f.Close(); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// CreateTarGz builds a gzip-compressed tar archive at outputPath containing
// the named files. Entries carry base names only, no directory components.
func CreateTarGz(outputPath string, files []string) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	for _, file := range files {
		if err := addFile(tw, file); err != nil {
			return fmt.Errorf("archive %s: %w", filepath.Base(file), err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("finalize tar: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("finalize gzip: %w", err)
	}
	return out.Close()
}

func addFile(tw *tar.Writer, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = filepath.Base(file)

	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}

// MoveAll relocates the named files into dir, replacing any previous
// outputs with the same name.
func MoveAll(files []string, dir string) error {
	for _, file := range files {
		dest := filepath.Join(dir, filepath.Base(file))
		if err := moveFile(file, dest); err != nil {
			return fmt.Errorf("move %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// moveFile renames src to dest, falling back to copy and remove when the
// two paths live on different filesystems.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
