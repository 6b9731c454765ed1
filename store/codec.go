package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/cuckoo/bench"
)

// CurrentCodecVersion is written into every payload.
const CurrentCodecVersion = 1

// ErrVersionMismatch is returned when a payload was written by another codec.
var ErrVersionMismatch = errors.New("store: record version mismatch")

type envelope struct {
	CodecVersion int          `json:"codec_version"`
	Record       bench.Record `json:"record"`
}

// EncodeRecord serializes rec with the current codec version.
func EncodeRecord(rec bench.Record) ([]byte, error) {
	return json.Marshal(envelope{CodecVersion: CurrentCodecVersion, Record: rec})
}

// DecodeRecord parses a payload written by EncodeRecord.
//
// Errors: ErrVersionMismatch, or the JSON error.
func DecodeRecord(data []byte) (bench.Record, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return bench.Record{}, err
	}
	if env.CodecVersion != CurrentCodecVersion {
		return bench.Record{}, fmt.Errorf("%w: codec %d, want %d", ErrVersionMismatch, env.CodecVersion, CurrentCodecVersion)
	}

	return env.Record, nil
}
