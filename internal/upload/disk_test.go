package upload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-api/internal/apperr"
)

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	return entries
}

func TestDisk_StoresImageUnderPublicImages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	d := NewDisk(dir, 5<<20)

	fh := newFileHeader(t, "shot one.png", "image/png", []byte("img-bytes"))
	url, err := d.Store(context.Background(), fh, nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/public/images/"), url)
	require.True(t, strings.HasSuffix(url, ".jpg"), url)
	require.Contains(t, url, "shot_one_png-")

	entries := dirEntries(t, filepath.Join(dir, "images"))
	require.Len(t, entries, 1)
	b, err := os.ReadFile(filepath.Join(dir, "images", entries[0].Name()))
	require.NoError(t, err)
	require.Equal(t, "img-bytes", string(b))
}

func TestDisk_PDFNamesAreCollisionProof(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	d := NewDisk(dir, 5<<20)
	ctx := context.Background()

	first, err := d.Store(ctx, newFileHeader(t, "resume.pdf", "application/pdf", []byte("one")), nil)
	require.NoError(t, err)
	second, err := d.Store(ctx, newFileHeader(t, "resume.pdf", "application/pdf", []byte("two")), nil)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(first, "/public/pdf/"), first)
	require.True(t, strings.HasSuffix(first, ".pdf"), first)
	require.NotEqual(t, first, second)
	require.Len(t, dirEntries(t, filepath.Join(dir, "pdf")), 2)
}

func TestDisk_OversizedRejectedBeforeAnyWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	d := NewDisk(dir, 10)

	fh := newFileHeader(t, "big.png", "image/png", make([]byte, 11))
	_, err := d.Store(context.Background(), fh, nil)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.KindValidation, ae.Kind)

	// no file, not even a temp one, may exist afterwards
	require.Empty(t, dirEntries(t, filepath.Join(dir, "images")))
	require.Empty(t, dirEntries(t, dir))
}

func TestDisk_MissingFile(t *testing.T) {
	t.Parallel()

	d := NewDisk(t.TempDir(), 5<<20)
	_, err := d.Store(context.Background(), nil, nil)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.KindValidation, ae.Kind)
}
