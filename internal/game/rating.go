package game

// Rating is what the difficulty engine reports for one window.
// Values are passed through untouched.
type Rating struct {
	Overall float64
	Aim     float64
	Speed   float64
}

type WindowResult struct {
	Time int // Window start in milliseconds
	Rating
}
