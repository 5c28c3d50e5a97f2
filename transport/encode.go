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

package transport

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	libmap "github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

func (t *Transport) unmarshall(val []byte) error {
	*t = ParseBytes(val)
	return nil
}

func (t Transport) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Transport) UnmarshalJSON(bytes []byte) error {
	return t.unmarshall(bytes)
}

func (t Transport) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *Transport) UnmarshalYAML(value *yaml.Node) error {
	return t.unmarshall([]byte(value.Value))
}

func (t Transport) MarshalTOML() ([]byte, error) {
	return []byte("\"" + t.String() + "\""), nil
}

func (t *Transport) UnmarshalTOML(i interface{}) error {
	if p, k := i.([]byte); k {
		return t.unmarshall(p)
	}
	if p, k := i.(string); k {
		return t.unmarshall([]byte(p))
	}
	return fmt.Errorf("transport: value not in valid format")
}

func (t Transport) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Transport) UnmarshalText(bytes []byte) error {
	return t.unmarshall(bytes)
}

func (t Transport) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(t.String())
}

func (t *Transport) UnmarshalCBOR(bytes []byte) error {
	var s string
	if err := cbor.Unmarshal(bytes, &s); err != nil {
		return err
	} else {
		*t = Parse(s)
		return nil
	}
}

// ViperDecoderHook returns a mapstructure decode hook allowing viper to
// decode a string value into a Transport.
func ViperDecoderHook() libmap.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		var (
			z = TransportDatagram
			t string
			k bool
		)

		if from.Kind() != reflect.String {
			return data, nil
		} else if t, k = data.(string); !k {
			return data, nil
		}

		if reflect.TypeOf(z) != to {
			return data, nil
		}

		return Parse(t), nil
	}
}
