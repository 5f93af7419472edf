// Package puzzle implements the stage-file pipeline: each puzzle moves
// through stage0.json .. stage4.json, with each stage adding a field
// (quote letters, clue answers, clue-position indices, chat copy) to the
// same on-disk record.
package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Clue is one attribution-letter answer: the word chosen for that slot,
// its letters, and the positions within quote_letters where those
// letters appear (used by the front end to reveal cells as a player
// solves a clue).
type Clue struct {
	Clue          *string `json:"clue,omitempty"`
	Answer        string  `json:"answer"`
	AnswerLetters string  `json:"answer_letters"`
	Indices       []int   `json:"indices"`
}

// Puzzle is the full record for one acrostic puzzle, accreted across
// stages: quote/source start populated at stage0, the *_letters fields at
// stage1, clues at stage2, chat at stage4.
type Puzzle struct {
	Quote         string  `json:"quote"`
	QuoteLetters  *string `json:"quote_letters,omitempty"`
	Source        string  `json:"source"`
	SourceLetters *string `json:"source_letters,omitempty"`
	Clues         []Clue  `json:"clues,omitempty"`
	Chat          *string `json:"chat,omitempty"`
}

// path returns the on-disk location of a puzzle's stage file, a flat
// per-id directory under dir (dir/<id>/<stage>.json).
func path(dir string, id int, stage string) string {
	return filepath.Join(dir, fmt.Sprintf("%d", id), stage)
}

// Read loads a puzzle's stage file.
func Read(dir string, id int, stage string) (*Puzzle, error) {
	data, err := os.ReadFile(path(dir, id, stage))
	if err != nil {
		return nil, fmt.Errorf("puzzle: reading %s for puzzle %d: %w", stage, id, err)
	}
	var p Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("puzzle: decoding %s for puzzle %d: %w", stage, id, err)
	}
	return &p, nil
}

// Write persists a puzzle's stage file, creating the per-id directory if
// needed.
func (p *Puzzle) Write(dir string, id int, stage string) error {
	full := path(dir, id, stage)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("puzzle: encoding %s for puzzle %d: %w", stage, id, err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return fmt.Errorf("puzzle: writing %s for puzzle %d: %w", stage, id, err)
	}
	return nil
}
