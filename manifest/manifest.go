// SPDX-License-Identifier: MIT

// Package manifest persists one record per converted input in a bolt
// database, so repeated batch runs can skip inputs that have not changed
// since their document was written.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// ErrNotFound is returned by Get for an input with no record.
var ErrNotFound = errors.New("manifest: record not found")

// StatusConverted is the Record.Status of an input whose document was written.
const StatusConverted = "converted"

// Record describes the latest conversion of one input file.
type Record struct {
	Input       string    `json:"input" boltholdKey:"Input"`
	Digest      string    `json:"digest"`
	Output      string    `json:"output,omitempty"`
	Status      string    `json:"status" boltholdIndex:"Status"`
	Reason      string    `json:"reason,omitempty"`
	Nodes       int       `json:"nodes"`
	Groups      int       `json:"groups"`
	Vehicles    int       `json:"vehicles"`
	MetMinimum  bool      `json:"met_minimum"`
	ConvertedAt time.Time `json:"converted_at"`
}

// Store is a manifest backed by bolthold.
type Store struct {
	db *bolthold.Store
}

// Open opens or creates the manifest database at path, creating parent
// directories as needed. The open blocks for at most 5 s on a locked file.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "manifest: create directory")
	}
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "manifest: open %s", path)
	}

	return &Store{db: db}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or replaces the record for rec.Input.
func (s *Store) Put(rec Record) error {
	return errors.Wrapf(s.db.Upsert(rec.Input, &rec), "manifest: put %s", rec.Input)
}

// Get returns the record for input or ErrNotFound.
func (s *Store) Get(input string) (*Record, error) {
	var rec Record
	if err := s.db.Get(input, &rec); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "manifest: get %s", input)
	}
	rec.Input = input

	return &rec, nil
}

// List returns every record ordered by input path.
func (s *Store) List() ([]Record, error) {
	return s.find(&bolthold.Query{})
}

// ListStatus returns the records with the given status ordered by input path.
func (s *Store) ListStatus(status string) ([]Record, error) {
	return s.find(bolthold.Where("Status").Eq(status).Index("Status"))
}

func (s *Store) find(q *bolthold.Query) ([]Record, error) {
	var recs []Record
	if err := s.db.Find(&recs, q); err != nil {
		return nil, errors.Wrap(err, "manifest: find")
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Input < recs[j].Input })

	return recs, nil
}

// Fresh reports whether input was converted from content with the given
// digest and its output document still exists.
func (s *Store) Fresh(input, digest string) (bool, error) {
	rec, err := s.Get(input)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if rec.Status != StatusConverted || rec.Digest != digest || rec.Output == "" {
		return false, nil
	}
	if _, err = os.Stat(rec.Output); err != nil {
		return false, nil
	}

	return true, nil
}

// Digest returns the hex SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}
