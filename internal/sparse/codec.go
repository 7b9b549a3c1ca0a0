// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

package sparse

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Artifact format: gzip stream wrapping a little-endian binary layout of
//
//	magic   [4]byte  "TFSM"
//	version uint32   (currently 1)
//	rows    uint64
//	cols    uint64
//	nnz     uint64
//	indptr  [rows+1]int64
//	indices [nnz]int32
//	data    [nnz]float32
//
// The gzip layer mirrors the deflate compression of the original .npz
// artifact this format replaces.
const (
	matrixMagic   = "TFSM"
	matrixVersion = uint32(1)

	// maxArtifactEntries bounds allocations when reading headers from
	// untrusted or corrupted files.
	maxArtifactEntries = 1 << 31
)

// LoadMatrix reads a matrix artifact from the given path.
func LoadMatrix(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matrix artifact: %w", err)
	}
	defer f.Close()

	m, err := DecodeMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("matrix artifact %s: %w", path, err)
	}
	return m, nil
}

// DecodeMatrix reads a gzip-compressed CSR artifact from r.
func DecodeMatrix(r io.Reader) (*Matrix, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer zr.Close()

	br := bufio.NewReader(zr)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if string(magic[:]) != matrixMagic {
		return nil, fmt.Errorf("bad magic %q, want %q", magic[:], matrixMagic)
	}

	var version uint32
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version != matrixVersion {
		return nil, fmt.Errorf("unsupported matrix format version %d", version)
	}

	var rows, cols, nnz uint64
	for _, v := range []*uint64{&rows, &cols, &nnz} {
		if err := binary.Read(br, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
	}
	if rows >= maxArtifactEntries || cols >= maxArtifactEntries || nnz >= maxArtifactEntries {
		return nil, fmt.Errorf("implausible matrix header: rows=%d cols=%d nnz=%d", rows, cols, nnz)
	}

	indptr := make([]int64, rows+1)
	if err := binary.Read(br, binary.LittleEndian, indptr); err != nil {
		return nil, fmt.Errorf("read indptr: %w", err)
	}
	indices := make([]int32, nnz)
	if err := binary.Read(br, binary.LittleEndian, indices); err != nil {
		return nil, fmt.Errorf("read indices: %w", err)
	}
	data := make([]float32, nnz)
	if err := binary.Read(br, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}

	return NewMatrix(int(rows), int(cols), indptr, indices, data)
}

// EncodeMatrix writes m to w in the artifact format. The runtime service
// never writes artifacts; this exists for fixture generation and tests.
func EncodeMatrix(w io.Writer, m *Matrix) error {
	zw := gzip.NewWriter(w)

	bw := bufio.NewWriter(zw)
	if _, err := bw.WriteString(matrixMagic); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	for _, v := range []interface{}{
		matrixVersion,
		uint64(m.rows),
		uint64(m.cols),
		uint64(len(m.data)),
		m.indptr,
		m.indices,
		m.data,
	} {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("write matrix artifact: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush matrix artifact: %w", err)
	}
	return zw.Close()
}
