// Copyright 2012 Arne Roomann-Kurrik
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command voronoi-svg runs the sweep engine to completion over a set
// of random sites and writes an SVG rendering of the completed edges.
// The rendering itself is an external collaborator, outside the
// engine's scope; this command is a thin consumer of the public API.
//
// Run with:
//
//	go run ./cmd/voronoi-svg > diagram.svg
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"text/template"

	"github.com/fortunesweep/voronoi"
)

const svgTemplate = `<?xml version="1.0" ?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN"
  "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg width="{{.Width}}px" height="{{.Width}}px" viewBox="0 0 {{.Width}} {{.Width}}"
     xmlns="http://www.w3.org/2000/svg" version="1.1">
  <title>{{.Title}}</title>
  <desc>{{.Description}}</desc>
  <!-- Completed edges -->
  <g stroke="red" stroke-width="{{.StrokeWidth}}" fill="none">
    {{range .Edges}}<path d="M{{.A.X}},{{.A.Y}} L{{.B.X}},{{.B.Y}}" />
    {{end}}</g>
  <!-- Sites -->
  <g fill="black">
    {{range .Sites}}<circle cx="{{.X}}" cy="{{.Y}}" r="{{$.PointRadius}}" />
    {{end}}</g>
</svg>`

type svgData struct {
	Width       int
	Edges       []voronoi.Segment
	Sites       []voronoi.Point
	Title       string
	Description string
	StrokeWidth int
	PointRadius int
}

func main() {
	points := flag.Int("points", 200, "number of random sites")
	width := flag.Int("width", 500, "diagram width/height in pixels")
	seed := flag.Int64("seed", 7584, "random source seed")
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seed))
	sites := make([]voronoi.Point, *points)
	for i := range sites {
		sites[i] = voronoi.Point{X: rnd.Intn(*width), Y: rnd.Intn(*width)}
	}

	engine, err := voronoi.New(sites, *width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voronoi-svg: %v\n", err)
		os.Exit(1)
	}
	engine.RunAll()

	data := svgData{
		Width:       *width,
		Edges:       engine.Snapshot(engine.CurrentD()).CompletedSegments,
		Sites:       sites,
		Title:       "Voronoi diagram",
		Description: "Completed edges after a full sweep",
		StrokeWidth: 1,
		PointRadius: 2,
	}

	tmpl := template.Must(template.New("svg").Parse(svgTemplate))
	if err := tmpl.Execute(os.Stdout, data); err != nil {
		fmt.Fprintf(os.Stderr, "voronoi-svg: %v\n", err)
		os.Exit(1)
	}
}
