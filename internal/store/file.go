package store

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"jobboard-portal/internal/models"
)

// dataFile is the on-disk layout of a snapshot. Jobs point at their
// company through company_id. JSON files are accepted as well, since JSON
// is valid YAML.
type dataFile struct {
	Companies []models.Company `yaml:"companies"`
	Jobs      []models.Job     `yaml:"jobs"`
}

// LoadFile reads a snapshot from a YAML or JSON file
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read data file %s", path)
	}

	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "load data file %s", path)
	}
	return s, nil
}

// Decode reads a snapshot document from r. Unknown keys are rejected so
// that typos in a data file surface instead of silently dropping fields.
func Decode(r io.Reader) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc dataFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("data file is empty")
		}
		return nil, errors.Wrap(err, "decode snapshot")
	}

	return New(doc.Companies, doc.Jobs)
}

// Encode writes s in the format Decode reads
func Encode(w io.Writer, s *Store) error {
	doc := dataFile{
		Companies: s.Companies(),
		Jobs:      s.Jobs(),
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	return enc.Close()
}
