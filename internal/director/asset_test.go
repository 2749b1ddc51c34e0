package director

import (
	"testing"

	"github.com/vovakirdan/director-arcade/internal/core"
)

func TestAssetResetRestoresSnapshot(t *testing.T) {
	r := newRecorder(t, Settings{})
	ball := r.CreateAsset(Asset{
		Pos:  core.Vec{X: 5, Y: 5},
		Spd:  core.Vec{X: 1, Y: -1},
		Dim:  Dim{R: 1},
		Body: Trail(core.Vec{X: 1, Y: 1}, core.Vec{X: 2, Y: 1}),
		OnUpdate: func(a *Asset) {
			a.Pos = a.Pos.Add(a.Spd)
		},
	})

	for range 3 {
		ball.Update()
	}
	ball.Spd = core.Vec{X: -1, Y: 1}
	ball.Body[0].Hit = true
	ball.Body = append(ball.Body, Segment{Vec: core.Vec{X: 9, Y: 9}})

	ball.Reset()

	if ball.Pos != (core.Vec{X: 5, Y: 5}) {
		t.Errorf("Pos = %+v, want (5,5)", ball.Pos)
	}
	if ball.Spd != (core.Vec{X: 1, Y: -1}) {
		t.Errorf("Spd = %+v, want (1,-1)", ball.Spd)
	}
	if len(ball.Body) != 2 || ball.Body[0].Hit {
		t.Errorf("Body = %+v, want two fresh segments", ball.Body)
	}

	// A second round of mutation must not leak into the snapshot.
	ball.Body[1].X = 50
	ball.Reset()
	if ball.Body[1].X != 2 {
		t.Errorf("snapshot was mutated: %+v", ball.Body)
	}
}

func TestAssetCustomReset(t *testing.T) {
	r := newRecorder(t, Settings{})
	resets := 0
	a := r.CreateAsset(Asset{OnReset: func(*Asset) { resets++ }})
	a.Pos = core.Vec{X: 3}

	a.Reset()
	if resets != 1 {
		t.Errorf("custom reset called %d times", resets)
	}
	if a.Pos.X != 3 {
		t.Error("custom reset should replace the default snapshot restore")
	}
}

func TestAssetNilBehaviors(t *testing.T) {
	var a Asset
	a.Draw()
	a.Update()
	if a.Head() != (core.Vec{}) {
		t.Errorf("Head() = %+v", a.Head())
	}
}

func TestAssetAlive(t *testing.T) {
	a := Asset{Body: Trail(core.Vec{}, core.Vec{X: 1}, core.Vec{X: 2})}
	a.Body[1].Hit = true
	if got := a.Alive(); got != 2 {
		t.Errorf("Alive() = %d, want 2", got)
	}
}

func TestRandomCoord(t *testing.T) {
	tests := []struct {
		name string
		cell int
		b    Bounds
	}{
		{"unit cells", 1, Bounds{MinX: 1, MaxX: 30, MinY: 2, MaxY: 15}},
		{"wide cells", 2, Bounds{MinX: 2, MaxX: 40, MinY: 2, MaxY: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder(t, Settings{CellSize: tt.cell})
			for range 500 {
				p := r.RandomCoord(tt.b)
				if p.X < tt.b.MinX || p.X >= tt.b.MaxX || p.Y < tt.b.MinY || p.Y >= tt.b.MaxY {
					t.Fatalf("point %+v outside %+v", p, tt.b)
				}
				if int(p.X-tt.b.MinX)%tt.cell != 0 || int(p.Y-tt.b.MinY)%tt.cell != 0 {
					t.Fatalf("point %+v not on the grid", p)
				}
			}
		})
	}
}

func TestRandomCoordDegenerate(t *testing.T) {
	r := newRecorder(t, Settings{})
	p := r.RandomCoord(Bounds{MinX: 4, MaxX: 4, MinY: 7, MaxY: 8})
	if p != (core.Vec{X: 4, Y: 7}) {
		t.Errorf("RandomCoord on empty bounds = %+v, want (4,7)", p)
	}
}

func TestRandomCoordDeterministic(t *testing.T) {
	a := newRecorder(t, Settings{})
	b := newRecorder(t, Settings{})
	bounds := Bounds{MaxX: 100, MaxY: 100}
	for range 20 {
		if pa, pb := a.RandomCoord(bounds), b.RandomCoord(bounds); pa != pb {
			t.Fatalf("same seed produced %+v and %+v", pa, pb)
		}
	}
}
