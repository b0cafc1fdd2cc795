// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image/color"
	"math"
	"net/http"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// palette holds the series colors, in dropdown order.
var palette = []color.RGBA{
	{R: 0x41, G: 0x69, B: 0xe1, A: 0xff},
	{R: 0xdc, G: 0x3f, B: 0x34, A: 0xff},
	{R: 0x10, G: 0x96, B: 0x18, A: 0xff},
	{R: 0xff, G: 0x99, B: 0x00, A: 0xff},
	{R: 0x99, G: 0x00, B: 0x99, A: 0xff},
	{R: 0x00, G: 0x99, B: 0xc6, A: 0xff},
}

// chartPNG handles /chart.png. It renders one chart of the named view
// as a grouped bar chart.
func (a *App) chartPNG(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)

	v := findView(r.FormValue("name"))
	if v == nil {
		http.Error(w, "unknown view", http.StatusNotFound)
		return
	}
	idx := 0
	if s := r.FormValue("chart"); s != "" {
		var err error
		if idx, err = strconv.Atoi(s); err != nil || idx < 0 || idx >= len(v.Charts) {
			http.Error(w, "unknown chart", http.StatusNotFound)
			return
		}
	}
	c := v.Charts[idx]
	t := c.Table(a.Data())
	if t.Len() == 0 {
		http.Error(w, "no data", http.StatusNotFound)
		return
	}

	pl := plot.New()
	pl.Title.Text = v.Title + ": " + c.Title
	pl.Legend.Top = true

	cols := t.Columns()
	xs := t.MustColumn(cols[0]).([]string)
	series := cols[1:]

	barWidth := vg.Points(10)
	for j, name := range series {
		b, err := plotter.NewBarChart(plotter.Values(t.MustColumn(name).([]float64)), barWidth)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		b.Color = palette[j%len(palette)]
		b.Offset = vg.Length(float64(j)-float64(len(series)-1)/2) * barWidth
		pl.Add(b)
		pl.Legend.Add(name, b)
	}
	pl.NominalX(xs...)

	pl.X.Tick.Label.Rotation = -math.Pi / 8
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XLeft

	canvas := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(25*vg.Centimeter, 12*vg.Centimeter),
		vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(canvas))

	w.Header().Set("Content-Type", "image/png")
	if _, err := canvas.WriteTo(w); err != nil {
		errorf(ctx, "writing chart %q/%d: %v", v.Tag, idx, err)
	}
}
