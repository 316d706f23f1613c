package strength

import "encoding/json"

// Level is the display category of a score.
type Level int

const (
	Neutral Level = iota // 0
	Alert                // 1-2
	Caution              // 3-4
	Success              // 5
)

// LevelFor maps a score to its level. Out-of-range scores are Neutral.
func LevelFor(score int) Level {
	switch score {
	case 1, 2:
		return Alert
	case 3, 4:
		return Caution
	case 5:
		return Success
	}
	return Neutral
}

func (l Level) String() string {
	switch l {
	case Alert:
		return "alert"
	case Caution:
		return "caution"
	case Success:
		return "success"
	}
	return "neutral"
}

// MarshalJSON adds the derived percent and level fields.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Score   int     `json:"score"`
		Percent int     `json:"percent"`
		Level   string  `json:"level"`
		Remark  string  `json:"remark"`
		Counts  *Counts `json:"counts,omitempty"`
	}{
		Score:   r.Score,
		Percent: r.Percent(),
		Level:   r.Level().String(),
		Remark:  r.Remark,
		Counts:  r.Counts,
	})
}
