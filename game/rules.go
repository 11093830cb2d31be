package game

import "fmt"

const (
	// MaxWidth keeps column letters within A-Z.
	MaxWidth = 26
)

// Rules fixes the board geometry: a Width x Width grid where Goal marks in
// a row, column or diagonal win.
type Rules struct {
	Width int `yaml:"width"`
	Goal  int `yaml:"goal"`
}

func NewStandardRules() Rules {
	return Rules{Width: 3, Goal: 3}
}

func (r Rules) Cells() int {
	return r.Width * r.Width
}

func (r Rules) Validate() error {
	if r.Width < 1 || r.Width > MaxWidth {
		return fmt.Errorf("board width %d out of range [1, %d]", r.Width, MaxWidth)
	}
	if r.Goal < 1 || r.Goal > r.Width {
		return fmt.Errorf("goal %d out of range [1, %d]", r.Goal, r.Width)
	}
	return nil
}

// lines enumerates every Goal-long segment of cells as index slices.
func (r Rules) lines() [][]int {
	var lines [][]int
	directions := [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for row := 0; row < r.Width; row++ {
		for col := 0; col < r.Width; col++ {
			for _, d := range directions {
				endRow := row + d[0]*(r.Goal-1)
				endCol := col + d[1]*(r.Goal-1)
				if endRow < 0 || endRow >= r.Width || endCol < 0 || endCol >= r.Width {
					continue
				}
				line := make([]int, r.Goal)
				for k := range line {
					line[k] = (row+d[0]*k)*r.Width + col + d[1]*k
				}
				lines = append(lines, line)
			}
		}
	}
	return lines
}
