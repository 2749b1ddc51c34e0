package director

import (
	"slices"

	"github.com/vovakirdan/director-arcade/internal/core"
)

// Dim holds an asset's radius and box size.
type Dim struct {
	R, W, H float64
}

// Segment is one part of a multi-part asset (snake trail cell, brick, anchor).
type Segment struct {
	core.Vec
	Hit bool // Segment was destroyed and is no longer drawn or collided with
}

// Asset is a drawable, updatable game entity: plain data plus behaviors.
// Behaviors receive the asset itself; nil behaviors are no-ops, and a nil
// OnReset restores the state captured by CreateAsset.
type Asset struct {
	Pos   core.Vec
	Spd   core.Vec
	Dim   Dim
	Color string
	Body  []Segment

	OnDraw   func(a *Asset)
	OnUpdate func(a *Asset)
	OnReset  func(a *Asset)

	initial assetState
}

type assetState struct {
	pos, spd core.Vec
	dim      Dim
	body     []Segment
}

// CreateAsset registers the asset's current state as its initial state.
func (d *Director) CreateAsset(a Asset) *Asset {
	asset := &a
	asset.initial = assetState{
		pos:  a.Pos,
		spd:  a.Spd,
		dim:  a.Dim,
		body: slices.Clone(a.Body),
	}
	return asset
}

// Draw renders the asset's current state.
func (a *Asset) Draw() {
	if a.OnDraw != nil {
		a.OnDraw(a)
	}
}

// Update advances the asset by one tick.
func (a *Asset) Update() {
	if a.OnUpdate != nil {
		a.OnUpdate(a)
	}
}

// Reset returns the asset to its initial state.
func (a *Asset) Reset() {
	if a.OnReset != nil {
		a.OnReset(a)
		return
	}
	a.Pos = a.initial.pos
	a.Spd = a.initial.spd
	a.Dim = a.initial.dim
	a.Body = slices.Clone(a.initial.body)
}

// Head returns the first body segment, or the position for single-part assets.
func (a *Asset) Head() core.Vec {
	if len(a.Body) == 0 {
		return a.Pos
	}
	return a.Body[0].Vec
}

// Alive counts the body segments that have not been hit.
func (a *Asset) Alive() int {
	n := 0
	for _, s := range a.Body {
		if !s.Hit {
			n++
		}
	}
	return n
}

// Trail builds body segments from coordinates.
func Trail(points ...core.Vec) []Segment {
	body := make([]Segment, len(points))
	for i, p := range points {
		body[i] = Segment{Vec: p}
	}
	return body
}
