package main

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	plotWidth  = 1200
	plotHeight = 800

	plotMarginLeft   = 90.0
	plotMarginRight  = 170.0
	plotMarginTop    = 60.0
	plotMarginBottom = 70.0

	plotPointRadius = 4.0
)

type Color struct {
	R, G, B float64
}

// same cycle matplotlib uses for scatter series
var plotColors = []Color{
	{0.12, 0.47, 0.71},
	{1.00, 0.50, 0.05},
	{0.17, 0.63, 0.17},
	{0.84, 0.15, 0.16},
	{0.58, 0.40, 0.74},
	{0.55, 0.34, 0.29},
	{0.89, 0.47, 0.76},
	{0.50, 0.50, 0.50},
	{0.74, 0.74, 0.13},
	{0.09, 0.75, 0.81},
}

func getPlotColor(i int) Color {
	return plotColors[i%len(plotColors)]
}

func setRGBColor(dc *gg.Context, c Color) {
	dc.SetRGB(c.R, c.G, c.B)
}

// plotFrame maps data coordinates (seconds, note) to pixels
type plotFrame struct {
	left, top, width, height float64
	minTime, maxTime         float64
	minNote, maxNote         float64
}

func newPlotFrame(table *TimingTable, w, h int) plotFrame {
	frame := plotFrame{
		left:    plotMarginLeft,
		top:     plotMarginTop,
		width:   float64(w) - plotMarginLeft - plotMarginRight,
		height:  float64(h) - plotMarginTop - plotMarginBottom,
		maxTime: table.LastOnset(),
	}

	notes := table.Notes()
	if len(notes) == 0 {
		frame.minNote, frame.maxNote = 0, 1
	} else {
		frame.minNote, frame.maxNote = math.Inf(1), math.Inf(-1)
		for _, note := range notes {
			frame.minNote = math.Min(frame.minNote, float64(note))
			frame.maxNote = math.Max(frame.maxNote, float64(note))
		}
	}

	// pad both axes so points never sit on the border
	timePad := math.Max(frame.maxTime*0.05, 0.5)
	frame.minTime = -timePad
	frame.maxTime += timePad
	frame.minNote -= 2
	frame.maxNote += 2

	return frame
}

func (f plotFrame) x(seconds float64) float64 {
	return f.left + (seconds-f.minTime)/(f.maxTime-f.minTime)*f.width
}

func (f plotFrame) y(note float64) float64 {
	return f.top + f.height - (note-f.minNote)/(f.maxNote-f.minNote)*f.height
}

// niceStep picks a 1/2/5 step giving roughly target ticks over span
func niceStep(span float64, target int) float64 {
	if span <= 0 || target <= 0 {
		return 1
	}
	raw := span / float64(target)
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step := m * magnitude; step >= raw {
			return step
		}
	}
	return 10 * magnitude
}

func loadPlotFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "error loading plot font")
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: size}), nil
}

// renderScatter draws one series per note: onset time on x, note number on y
func renderScatter(table *TimingTable, w, h int) (*gg.Context, error) {
	labelFace, err := loadPlotFace(14)
	if err != nil {
		return nil, err
	}
	titleFace, err := loadPlotFace(20)
	if err != nil {
		return nil, err
	}

	frame := newPlotFrame(table, w, h)
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	drawPlotGrid(dc, frame, labelFace)

	for i, note := range table.Notes() {
		setRGBColor(dc, getPlotColor(i))
		for _, onset := range table.Onsets(note) {
			dc.DrawCircle(frame.x(onset.Time), frame.y(float64(note)), plotPointRadius)
			dc.Fill()
		}
	}

	drawPlotLegend(dc, frame, table.Notes(), labelFace)

	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(titleFace)
	dc.DrawStringAnchored("Drum MIDI Notes over Time", frame.left+frame.width/2, frame.top/2, 0.5, 0.5)

	dc.SetFontFace(labelFace)
	dc.DrawStringAnchored("Time (s)", frame.left+frame.width/2, float64(h)-plotMarginBottom/3, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), plotMarginLeft/4, frame.top+frame.height/2)
	dc.DrawStringAnchored("MIDI Note", plotMarginLeft/4, frame.top+frame.height/2, 0.5, 0.5)
	dc.Pop()

	return dc, nil
}

func drawPlotGrid(dc *gg.Context, frame plotFrame, face font.Face) {
	dc.SetFontFace(face)
	dc.SetLineWidth(0.5)

	timeStep := niceStep(frame.maxTime-frame.minTime, 10)
	for t := math.Ceil(frame.minTime/timeStep) * timeStep; t <= frame.maxTime; t += timeStep {
		x := frame.x(t)
		dc.SetRGBA(0, 0, 0, 0.15)
		dc.DrawLine(x, frame.top, x, frame.top+frame.height)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(formatTick(t, timeStep), x, frame.top+frame.height+8, 0.5, 1)
	}

	noteStep := niceStep(frame.maxNote-frame.minNote, 8)
	for n := math.Ceil(frame.minNote/noteStep) * noteStep; n <= frame.maxNote; n += noteStep {
		y := frame.y(n)
		dc.SetRGBA(0, 0, 0, 0.15)
		dc.DrawLine(frame.left, y, frame.left+frame.width, y)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(formatTick(n, noteStep), frame.left-8, y, 1, 0.5)
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(frame.left, frame.top, frame.width, frame.height)
	dc.Stroke()
}

func drawPlotLegend(dc *gg.Context, frame plotFrame, notes []uint8, face font.Face) {
	dc.SetFontFace(face)

	x := frame.left + frame.width + 20
	y := frame.top + 10

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored("MIDI Note", x, y, 0, 0.5)

	for i, note := range notes {
		y += 22
		setRGBColor(dc, getPlotColor(i))
		dc.DrawCircle(x+plotPointRadius, y, plotPointRadius)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(fmt.Sprintf("Note %d", note), x+plotPointRadius*2+8, y, 0, 0.5)
	}
}

func formatTick(v, step float64) string {
	if math.Abs(v) < step/1e6 {
		v = 0
	}
	if step >= 1 {
		return fmt.Sprintf("%.0f", v)
	}
	decimals := int(math.Ceil(-math.Log10(step)))
	return fmt.Sprintf("%.*f", decimals, v)
}

// savePlot renders the scatter plot of a timing table as a PNG
func savePlot(filename string, table *TimingTable) error {
	dc, err := renderScatter(table, plotWidth, plotHeight)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return errors.Wrap(err, "error saving plot")
	}
	return nil
}
