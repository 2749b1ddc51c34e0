// Package tui hosts director games in a terminal through Bubble Tea.
// It pumps animation frames, maps keys, and turns the game canvas into
// styled terminal output.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one host animation callback. Pump identifies the frame
// chain so callbacks scheduled by a previous game are dropped.
type FrameMsg struct {
	At   time.Time
	Pump uint64
}

var pumpSeq atomic.Uint64

func nextPump() uint64 {
	return pumpSeq.Add(1)
}

// frameCmd schedules the next animation callback at the host frame rate.
func frameCmd(fps int, pump uint64) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t, Pump: pump}
	})
}
