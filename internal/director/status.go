package director

// Status is the lifecycle state of a game.
type Status string

const (
	StatusReady    Status = "game_ready"
	StatusStarted  Status = "game_start"
	StatusGameOver Status = "game_over"
)

// String returns a label suitable for logs.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusStarted:
		return "started"
	case StatusGameOver:
		return "game over"
	default:
		return string(s)
	}
}

// parseStatus accepts either the stored value or its label.
func parseStatus(raw string) (Status, bool) {
	for _, s := range []Status{StatusReady, StatusStarted, StatusGameOver} {
		if raw == string(s) || raw == s.String() {
			return s, true
		}
	}
	return "", false
}
