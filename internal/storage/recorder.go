package storage

import "github.com/vovakirdan/director-arcade/internal/core"

// Recorder saves each finished run of one game exactly once. Hosts feed
// it the game state after every frame or key press; a state that is no
// longer over re-arms it for the next run.
type Recorder struct {
	store      *Store
	gameID     string
	difficulty string
	saved      bool
}

// NewRecorder binds a recorder to a game. A nil store records nothing.
func NewRecorder(store *Store, gameID, difficulty string) *Recorder {
	return &Recorder{store: store, gameID: gameID, difficulty: difficulty}
}

// Observe records st when it is the first game-over state of a run.
// Runs that end with a zero score are not stored. The returned bool
// reports whether a row was written.
func (r *Recorder) Observe(st core.GameState) (bool, error) {
	if !st.GameOver {
		r.saved = false
		return false, nil
	}
	if r.saved {
		return false, nil
	}
	r.saved = true
	if r.store == nil || st.Score <= 0 {
		return false, nil
	}
	if _, err := r.store.SaveScore(r.gameID, r.difficulty, st.Score); err != nil {
		return false, err
	}
	return true, nil
}
