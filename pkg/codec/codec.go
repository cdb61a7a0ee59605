// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package codec encodes name values into the UTF-16 byte form used inside
// profile files.
package codec

import (
	"bytes"
	"unicode/utf16"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// UnitSize is the width in bytes of one encoded character.
const UnitSize = 2

// 🔤 ByteOrder selects the endianness of the encoded code units
type ByteOrder string

const (
	LittleEndian ByteOrder = "little"
	BigEndian    ByteOrder = "big"
)

// 🎯 Codec converts text values to their encoded byte representation
type Codec struct {
	order ByteOrder
	enc   encoding.Encoding
}

// 🏭 New creates a codec for the given byte order
func New(order ByteOrder) (*Codec, error) {
	var endianness unicode.Endianness
	switch order {
	case LittleEndian, "":
		order = LittleEndian
		endianness = unicode.LittleEndian
	case BigEndian:
		endianness = unicode.BigEndian
	default:
		return nil, errors.Errorf("unknown byte order %q", order)
	}
	return &Codec{
		order: order,
		enc:   unicode.UTF16(endianness, unicode.IgnoreBOM),
	}, nil
}

// Default returns the little-endian codec profile files are written with.
func Default() *Codec {
	c, _ := New(LittleEndian)
	return c
}

// Order returns the byte order of the codec.
func (c *Codec) Order() ByteOrder {
	return c.order
}

// Encode returns the encoded bytes of value. Invalid UTF-8 is encoded as
// U+FFFD.
func (c *Codec) Encode(value string) ([]byte, error) {
	if value == "" {
		return []byte{}, nil
	}
	out, err := c.enc.NewEncoder().Bytes([]byte(value))
	if err != nil {
		return nil, errors.Errorf("encoding %q: %w", value, err)
	}
	return out, nil
}

// Equal reports whether data is exactly the encoded form of value.
func (c *Codec) Equal(data []byte, value string) (bool, error) {
	encoded, err := c.Encode(value)
	if err != nil {
		return false, err
	}
	return bytes.Equal(data, encoded), nil
}

// Contains reports whether the encoded form of value occurs anywhere in data.
func (c *Codec) Contains(data []byte, value string) (bool, error) {
	encoded, err := c.Encode(value)
	if err != nil {
		return false, err
	}
	return bytes.Contains(data, encoded), nil
}

// Units returns the number of UTF-16 code units value encodes to. This is
// the character count every field width is measured in.
func Units(value string) int {
	n := 0
	for _, r := range value {
		l := utf16.RuneLen(r)
		if l < 0 {
			// unencodable runes are written as U+FFFD
			l = 1
		}
		n += l
	}
	return n
}
