package game

// BeatMap is the parsed output of a beat detection pass over a song:
// the beat timestamps plus whatever metadata the detector reported.
type BeatMap struct {
	Title string
	Tempo float64   // Detected tempo in BPM, 0 when unknown
	Beats []float64 // Beat positions in seconds from the start of the song
}
