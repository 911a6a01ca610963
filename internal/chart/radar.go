// Package chart builds Plotly-compatible figure structures. The frontend
// passes them straight to Plotly.newPlot, so field names follow the Plotly
// JSON schema rather than Go convention.
package chart

import "github.com/Akkii71/perspective-engine/apimodels"

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type  string   `json:"type"`
	R     []int    `json:"r"`
	Theta []string `json:"theta"`
	Fill  string   `json:"fill"`
	Name  string   `json:"name"`
	Line  Line     `json:"line"`
}

type Line struct {
	Color string `json:"color"`
}

type Layout struct {
	Polar      Polar  `json:"polar"`
	ShowLegend bool   `json:"showlegend"`
	Margin     Margin `json:"margin"`
}

type Polar struct {
	RadialAxis RadialAxis `json:"radialaxis"`
}

type RadialAxis struct {
	Visible bool   `json:"visible"`
	Range   [2]int `json:"range"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Radar renders the five emotion axes as one filled polar trace. The radial
// range stays pinned to 0-10 no matter what the values are.
func Radar(scores apimodels.EmotionScores) Figure {
	return Figure{
		Data: []Trace{{
			Type:  "scatterpolar",
			R:     scores.Values(),
			Theta: scores.Axes(),
			Fill:  "toself",
			Name:  "Current State",
			Line:  Line{Color: "#7F7F7F"},
		}},
		Layout: Layout{
			Polar: Polar{
				RadialAxis: RadialAxis{Visible: true, Range: [2]int{0, 10}},
			},
			ShowLegend: false,
			Margin:     Margin{L: 40, R: 40, T: 40, B: 40},
		},
	}
}
