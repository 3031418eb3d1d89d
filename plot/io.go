// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/charts/base/errors"
	"cogentcore.org/charts/base/iox/tomlx"
	"cogentcore.org/charts/base/iox/yamlx"
	"cogentcore.org/charts/colors"
)

// Codecs are the supported file formats for options and data.
type Codecs int32 //enums:enum -trim-prefix Codec

const (
	CodecTOML Codecs = iota
	CodecYAML
)

// CodecForFile returns the codec for the extension of the given file.
func CodecForFile(filename string) (Codecs, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return CodecTOML, nil
	case ".yaml", ".yml":
		return CodecYAML, nil
	}
	return CodecTOML, fmt.Errorf("plot: unsupported file extension %q", filepath.Ext(filename))
}

func openFile(v any, filename string) error {
	c, err := CodecForFile(filename)
	if err != nil {
		return err
	}
	if c == CodecYAML {
		return yamlx.Open(v, filename)
	}
	return tomlx.Open(v, filename)
}

func readBytes(v any, b []byte, c Codecs) error {
	if c == CodecYAML {
		return yamlx.ReadBytes(v, b)
	}
	return tomlx.ReadBytes(v, b)
}

// codecRun returns the codec of the first file and the number of
// leading files sharing it.
func codecRun(filenames []string) (Codecs, int, error) {
	c, err := CodecForFile(filenames[0])
	if err != nil {
		return c, 0, err
	}
	n := 1
	for ; n < len(filenames); n++ {
		if cn, err := CodecForFile(filenames[n]); err != nil || cn != c {
			break
		}
	}
	return c, n, nil
}

// OpenOptions loads [Options] from the given files in order, starting
// from the defaults, so each file only overrides the values it names.
// Files may mix codecs.
func OpenOptions(filenames ...string) (*Options, error) {
	o := NewOptions()
	for len(filenames) > 0 {
		c, n, err := codecRun(filenames)
		if err == nil {
			if c == CodecYAML {
				err = yamlx.OpenFiles(o, filenames[:n]...)
			} else {
				err = tomlx.OpenFiles(o, filenames[:n]...)
			}
		}
		if err != nil {
			return o, fmt.Errorf("plot.OpenOptions %s: %w", strings.Join(filenames[:max(n, 1)], ", "), err)
		}
		filenames = filenames[n:]
	}
	return o, nil
}

// OpenOptionsFS loads [Options] from the given files of fsys
// (for example, embedded presets), like [OpenOptions].
func OpenOptionsFS(fsys fs.FS, filenames ...string) (*Options, error) {
	o := NewOptions()
	for _, fn := range filenames {
		c, err := CodecForFile(fn)
		if err == nil {
			if c == CodecYAML {
				err = yamlx.OpenFS(o, fsys, fn)
			} else {
				err = tomlx.OpenFS(o, fsys, fn)
			}
		}
		if err != nil {
			return o, fmt.Errorf("plot.OpenOptionsFS %s: %w", fn, err)
		}
	}
	return o, nil
}

// ReadOptions reads [Options] encoded with the given codec,
// starting from the defaults.
func ReadOptions(b []byte, c Codecs) (*Options, error) {
	o := NewOptions()
	return o, readBytes(o, b, c)
}

// SaveOptions saves the options to the given file,
// with the codec for its extension.
func SaveOptions(o *Options, filename string) error {
	c, err := CodecForFile(filename)
	if err != nil {
		return err
	}
	if c == CodecYAML {
		return yamlx.Save(o, filename)
	}
	return tomlx.Save(o, filename)
}

// DataFile is the file representation of [Data] and [ChordData].
// Colors are strings parsed by [colors.FromString], and a dataset
// may give plain Values instead of Data points.
type DataFile struct {

	// Kind is the chart type the data is meant for.
	Kind Kinds

	Labels   []string
	Datasets []DatasetFile

	// Matrix is the flow matrix of a chord diagram.
	Matrix [][]float64 `toml:",omitempty" yaml:",omitempty"`
}

// DatasetFile is the file representation of a [Dataset].
type DatasetFile struct {
	Dataset `yaml:",inline"`

	// Values are y values positioned by index, used if Data is empty.
	Values []float64 `toml:",omitempty" yaml:",omitempty"`

	Color            string `toml:",omitempty" yaml:",omitempty"`
	BorderColor      string `toml:",omitempty" yaml:",omitempty"`
	PointColor       string `toml:",omitempty" yaml:",omitempty"`
	PointBorderColor string `toml:",omitempty" yaml:",omitempty"`
}

// colorOf parses a color string, the empty string being the
// unset color.
func colorOf(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, nil
	}
	return colors.FromString(s)
}

// ToData converts the file representation to [Data].
func (df *DataFile) ToData() (*Data, error) {
	dt := NewData(df.Labels...)
	var errs []error
	for i := range df.Datasets {
		f := &df.Datasets[i]
		ds := NewDataset(f.Label)
		ds.Data = f.Data
		if len(f.Data) == 0 && len(f.Values) > 0 {
			ds.SetValues(f.Values...)
		}
		if f.BorderWidth != 0 {
			ds.BorderWidth = f.BorderWidth
		}
		if f.PointRadius != 0 {
			ds.PointRadius = f.PointRadius
		}
		if f.BarPercentage != 0 {
			ds.BarPercentage = f.BarPercentage
		}
		if f.CategoryPercentage != 0 {
			ds.CategoryPercentage = f.CategoryPercentage
		}
		if f.HoverOffset != 0 {
			ds.HoverOffset = f.HoverOffset
		}
		ds.Hidden = f.Hidden
		ds.Fill = f.Fill
		ds.SetTension(f.Tension)
		ds.PointStyle = f.PointStyle
		ds.BarThickness = f.BarThickness
		ds.BarBorderRadius = f.BarBorderRadius
		var err error
		if ds.Background, err = colorOf(f.Color); err != nil {
			errs = append(errs, err)
		}
		if ds.Border, err = colorOf(f.BorderColor); err != nil {
			errs = append(errs, err)
		}
		if ds.PointBackground, err = colorOf(f.PointColor); err != nil {
			errs = append(errs, err)
		}
		if ds.PointBorder, err = colorOf(f.PointBorderColor); err != nil {
			errs = append(errs, err)
		}
		dt.AddDataset(ds)
	}
	return dt, errors.Join(errs...)
}

// ToChordData converts the file representation to [ChordData],
// using Matrix if present, and otherwise the dataset values as rows.
func (df *DataFile) ToChordData() *ChordData {
	if len(df.Matrix) > 0 {
		return NewChordData(df.Labels, df.Matrix)
	}
	dt, _ := df.ToData()
	return ChordFromData(dt)
}

// OpenData loads a [DataFile] from the given file,
// with the codec for its extension.
func OpenData(filename string) (*DataFile, error) {
	df := &DataFile{}
	if err := openFile(df, filename); err != nil {
		return nil, fmt.Errorf("plot.OpenData %s: %w", filename, err)
	}
	return df, nil
}

// ReadData reads a [DataFile] encoded with the given codec.
func ReadData(b []byte, c Codecs) (*DataFile, error) {
	df := &DataFile{}
	return df, readBytes(df, b, c)
}
