package game

// PlayField is the simulation area in play-field units
// Passed into every update so nothing queries a global window size
type PlayField struct {
	Width, Height float64
}

func (f PlayField) Center() (float64, float64) {
	return f.Width * 0.5, f.Height * 0.5
}
