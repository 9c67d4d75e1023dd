package game

// Beatmap is a single difficulty, reduced to what the window evaluator needs:
// a reusable minimal header and the timed hit-object lines.
type Beatmap struct {
	Header     Header
	HitObjects []HitObject
}

// Header is the reconstructed minimal beatmap text, ending with the
// [HitObjects] marker, so window lines can be appended to it directly.
type Header struct {
	Text       string
	LineEnding string
	Fields     map[string]string // Trimmed values, keyed by field name
}

func (h Header) Field(name string) string {
	return h.Fields[name]
}

// Name is the usual "Artist - Title [Version]" display form.
func (h Header) Name() string {
	return h.Field("Artist") + " - " + h.Field("Title") + " [" + h.Field("Version") + "]"
}
