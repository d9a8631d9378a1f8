package montecarlo

import (
	"encoding/gob"
	"os"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
)

// Record is a single evaluated draw, saved for analysis outside Go.
type Record struct {
	Reputations []float64
	C           float64
	Equilibrium bool
}

// SaveRecords writes the records gob-encoded and gzipped to filename.
func SaveRecords(filename string, records []Record) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %v", filename)
	}

	w := gzip.NewWriter(f)
	enc := gob.NewEncoder(w)
	if err := enc.Encode(records); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %d records", len(records))
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadRecords reads records previously written by SaveRecords.
func LoadRecords(filename string) ([]Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %v", filename)
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}

	var records []Record
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Wrapf(err, "decoding %v", filename)
	}
	return records, nil
}
