// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the string representation of the given
// enum value with the given map. Values missing from the
// map are formatted as their integer value.
func String[T keyed](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// SetString sets the given enum value from its string
// representation, the map from enum names to values, and the
// name of the enum type, which is used for the error message.
func SetString[T comparable](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is the same as [SetString], but it also
// checks the lowercase version of the string.
func SetStringLower[T comparable](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value,
// falling back on its string representation.
func Desc[T interface {
	keyed
	fmt.Stringer
}](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values returns the given enum values as a slice of [Enum].
func Values[T Enum](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// UnmarshalText sets the given enum value from the given
// text, as used by text-based codecs such as TOML and YAML.
func UnmarshalText[T interface{ SetString(s string) error }](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("%s.UnmarshalText: %w", typeName, err)
	}
	return nil
}
