// Package filestore keeps attachment payloads on local disk. It is the
// local stand-in for the upload endpoint the hosted deployment would use:
// callers hand it a source file and get back the descriptor recorded on
// the deal.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/google/uuid"
)

// Store copies attachment files into a flat directory, one file per
// attachment ID.
type Store struct {
	dir string
}

// New creates the store directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating files directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save copies the file at src into the store and returns its descriptor.
// The stored name is "<id>_<basename>" so duplicate uploads of the same
// filename never collide.
func (s *Store) Save(src string) (domain.Attachment, error) {
	var a domain.Attachment

	in, err := os.Open(src)
	if err != nil {
		return a, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return a, fmt.Errorf("stat %s: %w", src, err)
	}

	id := uuid.New().String()
	filename := filepath.Base(src)
	dest := filepath.Join(s.dir, id+"_"+filename)

	out, err := os.Create(dest)
	if err != nil {
		return a, fmt.Errorf("creating %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		os.Remove(dest)
		return a, fmt.Errorf("copying %s: %w", src, err)
	}

	return domain.Attachment{
		ID:         id,
		Filename:   filename,
		URL:        dest,
		Size:       info.Size(),
		UploadedAt: time.Now().UTC(),
	}, nil
}

// Remove deletes the stored payload for a descriptor. A missing file is
// not an error; the descriptor is the authoritative record.
func (s *Store) Remove(a domain.Attachment) error {
	err := os.Remove(a.URL)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", a.URL, err)
	}
	return nil
}
