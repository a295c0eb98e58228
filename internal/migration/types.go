package migration

const (
	UpSuffix   = ".up.sql"
	DownSuffix = ".down.sql"

	// IndexWidth is the minimum number of digits in a rendered index.
	IndexWidth = 4

	Placeholder = "-- Write your migration here"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func (d Direction) Suffix() string {
	if d == DirectionDown {
		return DownSuffix
	}
	return UpSuffix
}

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeSkipped Outcome = "skipped"
)

type FileResult struct {
	Direction Direction `json:"direction"`
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Outcome   Outcome   `json:"outcome"`
}

// Report describes what a single Create call did on disk.
type Report struct {
	Index int          `json:"index"`
	Name  string       `json:"name"`
	Stem  string       `json:"stem"`
	Files []FileResult `json:"files"`
}

func (r *Report) Created() int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome == OutcomeCreated {
			n++
		}
	}
	return n
}
