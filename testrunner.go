package marquee

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Board  int     `json:"board,omitempty"`
	Text   string  `json:"text,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "hover": true, "release": true, "leave": true,
	"click": true, "drag": true, "wait": true, "text": true, "screenshot": true,
}

// TestRunner sequences injected pointer events, text changes and
// screenshots across frames for scripted visual checks. Attach it to a
// Stage with SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script of the form
//
//	{"steps": [{"action": "drag", "fromX": 2, "fromY": 2, "toX": 40, "toY": 2, "frames": 6},
//	           {"action": "screenshot", "label": "stroke"}]}
//
// Actions are press, move, hover, release, leave, click, drag, wait, text
// and screenshot.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner. Its step method runs at the start of
// every Stage.Update, before input is processed.
func (s *Stage) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has executed and all injected events
// have drained.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(s *Stage) {
	if r.done {
		return
	}
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "hover":
		s.InjectHover(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "leave":
		s.InjectLeave()
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "text":
		if st.Board >= 0 && st.Board < len(s.boards) {
			s.boards[st.Board].board.SetText(st.Text)
		} else {
			Logger().Warn("test script: no such board", "board", st.Board)
		}
	case "screenshot":
		s.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
