/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package state

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

func (s *State) unmarshall(val []byte) error {
	*s = ParseBytes(val)
	return nil
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *State) UnmarshalJSON(bytes []byte) error {
	return s.unmarshall(bytes)
}

func (s State) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *State) UnmarshalYAML(value *yaml.Node) error {
	return s.unmarshall([]byte(value.Value))
}

func (s State) MarshalTOML() ([]byte, error) {
	return []byte("\"" + s.String() + "\""), nil
}

func (s *State) UnmarshalTOML(i interface{}) error {
	if p, k := i.([]byte); k {
		return s.unmarshall(p)
	}
	if p, k := i.(string); k {
		return s.unmarshall([]byte(p))
	}
	return fmt.Errorf("connection state: value not in valid format")
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(bytes []byte) error {
	return s.unmarshall(bytes)
}

func (s State) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.String())
}

func (s *State) UnmarshalCBOR(bytes []byte) error {
	var t string
	if err := cbor.Unmarshal(bytes, &t); err != nil {
		return err
	} else {
		*s = Parse(t)
		return nil
	}
}
