//  Copyright (c) 2018 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package utf8dfa encodes a character-level automaton, typically a
// Levenshtein edit-distance automaton, into a deterministic automaton
// over raw UTF-8 bytes.  The caller registers its states with
// DFABuilder.AddState, giving each a distance and a default successor,
// adds explicit rune transitions through the returned StateBuilder, and
// freezes the result with Build.  The resulting DFA consumes input one
// byte at a time with a single table lookup per byte, yet counts
// characters, not bytes: multi-byte sequences are routed through
// synthesized intermediate states so that every character of any
// encoded length advances the caller's automaton by exactly one step.
package utf8dfa

import (
	"io"
	"os"

	mmap "github.com/blevesearch/mmap-go"
)

const defaultVersion = versionV1

// Save writes the DFA to the provided writer in the current file
// format.
func Save(d *DFA, w io.Writer) error {
	enc, err := loadEncoder(defaultVersion, w)
	if err != nil {
		return err
	}
	return enc.encode(d)
}

// SaveFile writes the DFA to a new file at the provided path.
func SaveFile(d *DFA, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return Save(d, file)
}

// Load decodes a DFA from the provided byte slice, which should have
// been written by Save.  The DFA copies what it needs, the slice is not
// retained.
func Load(data []byte) (*DFA, error) {
	ver, _, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	dec, err := loadDecoder(ver, data)
	if err != nil {
		return nil, err
	}
	return dec.decode()
}

// Open reads a DFA from the file at the provided path.  The file is
// memory-mapped for decoding and unmapped before returning, so the
// returned DFA holds no reference to the file.
func Open(path string) (rv *DFA, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer func() {
		if uerr := data.Unmap(); err == nil && uerr != nil {
			err = uerr
		}
	}()

	return Load(data)
}
