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
	"encoding/binary"
	"fmt"
	"io"
)

const headerSize = 16

type encoderConstructor func(w io.Writer) encoder
type decoderConstructor func(data []byte) decoder

var encoders = map[int]encoderConstructor{}
var decoders = map[int]decoderConstructor{}

type encoder interface {
	encode(d *DFA) error
}

type decoder interface {
	decode() (*DFA, error)
}

func loadEncoder(ver int, w io.Writer) (encoder, error) {
	if cons, ok := encoders[ver]; ok {
		return cons(w), nil
	}
	return nil, fmt.Errorf("no encoder for version %d registered", ver)
}

func registerEncoder(ver int, cons encoderConstructor) {
	encoders[ver] = cons
}

func loadDecoder(ver int, data []byte) (decoder, error) {
	if cons, ok := decoders[ver]; ok {
		return cons(data), nil
	}
	return nil, fmt.Errorf("no decoder for version %d registered", ver)
}

func registerDecoder(ver int, cons decoderConstructor) {
	decoders[ver] = cons
}

func decodeHeader(data []byte) (ver int, typ int, err error) {
	if len(data) < headerSize {
		return 0, 0, fmt.Errorf("invalid header < %d bytes", headerSize)
	}
	ver = int(binary.LittleEndian.Uint64(data))
	typ = int(binary.LittleEndian.Uint64(data[8:]))
	return ver, typ, nil
}
