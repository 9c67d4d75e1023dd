package game

type HitObject struct {
	Line string // The raw line, including its terminator
	Time int    // Milliseconds, the third comma separated field
}
