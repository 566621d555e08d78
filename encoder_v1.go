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

package utf8dfa

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

const versionV1 = 1

// v1 layout, all little-endian:
//
//	16 byte header (uint64 version, uint64 type)
//	uint64 initial state id
//	uint64 state count
//	per state, 2 bytes: at-least flag, distance value
//	per state, 1024 bytes: 256 uint32 transition targets
const transitionRowSize = 256 * 4

func init() {
	registerEncoder(versionV1, func(w io.Writer) encoder {
		return newEncoderV1(w)
	})
	registerDecoder(versionV1, func(data []byte) decoder {
		return newDecoderV1(data)
	})
}

type encoderV1 struct {
	w *bufio.Writer
}

func newEncoderV1(w io.Writer) *encoderV1 {
	return &encoderV1{
		w: bufio.NewWriter(w),
	}
}

func (e *encoderV1) encode(d *DFA) error {
	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint64(header, versionV1)
	binary.LittleEndian.PutUint64(header[8:], uint64(0)) // type
	_, err := e.w.Write(header)
	if err != nil {
		return err
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(d.initialState))
	_, err = e.w.Write(buf[:])
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(d.transitions)))
	_, err = e.w.Write(buf[:])
	if err != nil {
		return err
	}

	for _, dist := range d.distances {
		var atLeast byte
		if !dist.IsExact() {
			atLeast = 1
		}
		err = e.w.WriteByte(atLeast)
		if err != nil {
			return err
		}
		err = e.w.WriteByte(dist.Distance())
		if err != nil {
			return err
		}
	}

	for i := range d.transitions {
		row := &d.transitions[i]
		for _, to := range row {
			binary.LittleEndian.PutUint32(buf[:4], to)
			_, err = e.w.Write(buf[:4])
			if err != nil {
				return err
			}
		}
	}

	return e.w.Flush()
}

type decoderV1 struct {
	data []byte
}

func newDecoderV1(data []byte) *decoderV1 {
	return &decoderV1{
		data: data,
	}
}

func (d *decoderV1) decode() (*DFA, error) {
	if len(d.data) < headerSize+16 {
		return nil, fmt.Errorf("invalid data, not enough to decode preamble")
	}
	initialState := binary.LittleEndian.Uint64(d.data[headerSize:])
	numStates := int(binary.LittleEndian.Uint64(d.data[headerSize+8:]))

	distancesOff := headerSize + 16
	transitionsOff := distancesOff + 2*numStates
	expected := transitionsOff + numStates*transitionRowSize
	if len(d.data) != expected {
		return nil, fmt.Errorf("invalid data, len %d != expected %d for %d states",
			len(d.data), expected, numStates)
	}
	if numStates > 0 && initialState >= uint64(numStates) {
		return nil, fmt.Errorf("invalid initial state %d >= %d states",
			initialState, numStates)
	}

	rv := &DFA{
		transitions:  make([][256]uint32, numStates),
		distances:    make([]Distance, numStates),
		initialState: uint32(initialState),
	}

	for i := 0; i < numStates; i++ {
		atLeast := d.data[distancesOff+2*i]
		val := d.data[distancesOff+2*i+1]
		if atLeast != 0 {
			rv.distances[i] = AtLeast(val)
		} else {
			rv.distances[i] = Exact(val)
		}
	}

	for i := 0; i < numStates; i++ {
		rowData := d.data[transitionsOff+i*transitionRowSize:]
		row := &rv.transitions[i]
		for b := 0; b < 256; b++ {
			to := binary.LittleEndian.Uint32(rowData[b*4:])
			if to >= uint32(numStates) {
				return nil, fmt.Errorf("invalid transition %d/%x -> %d, only %d states",
					i, b, to, numStates)
			}
			row[b] = to
		}
	}

	return rv, nil
}
