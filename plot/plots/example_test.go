// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/plot"
)

func ExamplePieSlices() {
	labels := []string{"Red", "Blue", "Yellow", "Green", "Purple"}
	for _, s := range PieSlices(labels, []float64{300, 50, 100, 80, 120}, colors.PaletteChart) {
		fmt.Printf("%s %.1f%%\n", s.Label, s.Percentage*100)
	}
	// Output:
	// Red 46.2%
	// Blue 7.7%
	// Yellow 15.4%
	// Green 12.3%
	// Purple 18.5%
}

func ExampleNewBar() {
	dt := plot.NewData("Jan", "Feb", "Mar").
		AddDataset(plot.NewDataset("Sales").SetValues(10, 30, 20))
	b := NewBar()
	plot.Apply(b, dt, plot.NewOptions().WithoutAnimation(), chartArea, 0)
	b.Update(0)
	rec := &plot.Recorder{}
	b.Draw(rec)
	fmt.Println(len(rec.Bars), "bars")
	// Output: 3 bars
}
