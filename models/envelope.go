// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidByteArray is returned when a JSON value cannot be decoded into a
// [ByteArray] (not an array, or an element outside 0..255).
var ErrInvalidByteArray = errors.New("invalid byte array")

// ByteArray is a byte slice that travels over JSON as an array of small
// integers ([12, 250, 7]) instead of the base64 string encoding/json uses for
// []byte. The vault backend stores envelopes in this form.
type ByteArray []byte

// MarshalJSON implements [json.Marshaler]. A nil ByteArray encodes as [].
func (b ByteArray) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+len(b)*4)
	buf = append(buf, '[')
	for i, v := range b {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(v), 10)
	}
	buf = append(buf, ']')
	return buf, nil
}

// UnmarshalJSON implements [json.Unmarshaler]. JSON null decodes as an empty
// slice; every element must be an integer in 0..255.
func (b *ByteArray) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*b = nil
		return nil
	}

	var raw []json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidByteArray, err)
	}

	out := make([]byte, len(raw))
	for i, n := range raw {
		v, err := strconv.ParseUint(n.String(), 10, 8)
		if err != nil {
			return fmt.Errorf("%w: element %d (%s) is not a byte", ErrInvalidByteArray, i, n)
		}
		out[i] = byte(v)
	}

	*b = out
	return nil
}

// Envelope is the persisted and transmitted form of one encrypted secret:
// the GCM nonce and the ciphertext with its authentication tag appended.
// A nonce is never reused with the same key.
type Envelope struct {
	// IV is the 12-byte random nonce used for this encryption.
	IV ByteArray `json:"iv"`

	// Ciphertext is the AES-GCM output, tag included.
	Ciphertext ByteArray `json:"ciphertext"`
}

// IsZero reports whether the envelope carries neither nonce nor ciphertext.
func (e Envelope) IsZero() bool {
	return len(e.IV) == 0 && len(e.Ciphertext) == 0
}
