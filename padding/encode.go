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

package padding

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	libmap "github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

func (p *Padding) unmarshall(val []byte) error {
	*p = ParseBytes(val)
	return nil
}

func (p Padding) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Padding) UnmarshalJSON(bytes []byte) error {
	return p.unmarshall(bytes)
}

func (p Padding) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

func (p *Padding) UnmarshalYAML(value *yaml.Node) error {
	return p.unmarshall([]byte(value.Value))
}

func (p Padding) MarshalTOML() ([]byte, error) {
	return []byte("\"" + p.String() + "\""), nil
}

func (p *Padding) UnmarshalTOML(i interface{}) error {
	if v, k := i.([]byte); k {
		return p.unmarshall(v)
	}
	if v, k := i.(string); k {
		return p.unmarshall([]byte(v))
	}
	return fmt.Errorf("padding: value not in valid format")
}

func (p Padding) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Padding) UnmarshalText(bytes []byte) error {
	return p.unmarshall(bytes)
}

func (p Padding) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.String())
}

func (p *Padding) UnmarshalCBOR(bytes []byte) error {
	var s string
	if err := cbor.Unmarshal(bytes, &s); err != nil {
		return err
	} else {
		*p = Parse(s)
		return nil
	}
}

// ViperDecoderHook returns a mapstructure decode hook allowing viper to
// decode a string value into a Padding.
func ViperDecoderHook() libmap.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		var (
			z = PaddingNone
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
