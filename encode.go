package lucro

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeLedger writes the ledger as an indented JSON document.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a ledger written by EncodeLedger.
//
// Missing collections are replaced by their defaults.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := new(Ledger)
	if err := json.NewDecoder(r).Decode(l); err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	l.normalize()
	return l, nil
}
