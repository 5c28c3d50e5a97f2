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

package event

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

func (e *Event) unmarshall(val []byte) error {
	*e = ParseBytes(val)
	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *Event) UnmarshalJSON(bytes []byte) error {
	return e.unmarshall(bytes)
}

func (e Event) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}

func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	return e.unmarshall([]byte(value.Value))
}

func (e Event) MarshalTOML() ([]byte, error) {
	return []byte("\"" + e.String() + "\""), nil
}

func (e *Event) UnmarshalTOML(i interface{}) error {
	if p, k := i.([]byte); k {
		return e.unmarshall(p)
	}
	if p, k := i.(string); k {
		return e.unmarshall([]byte(p))
	}
	return fmt.Errorf("connection event: value not in valid format")
}

func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Event) UnmarshalText(bytes []byte) error {
	return e.unmarshall(bytes)
}

func (e Event) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(e.String())
}

func (e *Event) UnmarshalCBOR(bytes []byte) error {
	var t string
	if err := cbor.Unmarshal(bytes, &t); err != nil {
		return err
	} else {
		*e = Parse(t)
		return nil
	}
}
