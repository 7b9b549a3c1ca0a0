// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

package knn

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Artifact format, little-endian:
//
//	magic   [4]byte "KNNI"
//	version uint32  (currently 1)
//	metric  uint32 length + bytes
//	samples uint64
//	dim     uint64
const (
	indexMagic   = "KNNI"
	indexVersion = uint32(1)

	maxMetricLen = 64
)

// Load reads an index artifact from the given path. The returned index
// must be bound to its feature matrix before querying.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open index artifact: %w", err)
	}
	defer f.Close()

	ix, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("index artifact %s: %w", path, err)
	}
	return ix, nil
}

// Decode reads an index artifact from r.
func Decode(r io.Reader) (*Index, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if string(magic[:]) != indexMagic {
		return nil, fmt.Errorf("bad magic %q, want %q", magic[:], indexMagic)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version != indexVersion {
		return nil, fmt.Errorf("unsupported index format version %d", version)
	}

	var metricLen uint32
	if err := binary.Read(r, binary.LittleEndian, &metricLen); err != nil {
		return nil, fmt.Errorf("read metric length: %w", err)
	}
	if metricLen == 0 || metricLen > maxMetricLen {
		return nil, fmt.Errorf("implausible metric length %d", metricLen)
	}
	metric := make([]byte, metricLen)
	if _, err := io.ReadFull(r, metric); err != nil {
		return nil, fmt.Errorf("read metric: %w", err)
	}
	if string(metric) != MetricCosine {
		return nil, fmt.Errorf("unsupported metric %q, want %q", metric, MetricCosine)
	}

	var samples, dim uint64
	if err := binary.Read(r, binary.LittleEndian, &samples); err != nil {
		return nil, fmt.Errorf("read sample count: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return nil, fmt.Errorf("read dimension: %w", err)
	}
	if samples == 0 {
		return nil, fmt.Errorf("index was trained on zero samples")
	}

	return &Index{
		metric:  string(metric),
		samples: int(samples),
		dim:     int(dim),
	}, nil
}

// New builds an untrained-artifact-equivalent index directly. Used by
// tests and fixture generation.
func New(metric string, samples, dim int) *Index {
	return &Index{metric: metric, samples: samples, dim: dim}
}

// Encode writes the index metadata to w in the artifact format. Exists
// for fixture generation and tests; the service itself never writes.
func Encode(w io.Writer, ix *Index) error {
	if _, err := w.Write([]byte(indexMagic)); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	for _, v := range []interface{}{
		indexVersion,
		uint32(len(ix.metric)),
	} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("write index artifact: %w", err)
		}
	}
	if _, err := w.Write([]byte(ix.metric)); err != nil {
		return fmt.Errorf("write metric: %w", err)
	}
	for _, v := range []interface{}{uint64(ix.samples), uint64(ix.dim)} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("write index artifact: %w", err)
		}
	}
	return nil
}
