package config

import (
	"gopkg.in/alecthomas/kingpin.v2"

	"everyrhythm/internal/game"
)

var (
	Directory           = kingpin.Arg("directory", "Song directory with an audio file and a beat file").Required().ExistingDir()
	Offset              = kingpin.Flag("offset", "Global timing offset").Default("0ms").Short('o').Duration()
	Delay               = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	Volume              = kingpin.Flag("volume", "Playback volume, 0 to 1").Default("0.7").Short('v').Float64()
	perfect             = kingpin.Flag("perfect", "Perfect window in milliseconds").Default("25").Float64()
	good                = kingpin.Flag("good", "Good window in milliseconds").Default("50").Float64()
	FramePeriod         = kingpin.Flag("frame-period", "Render frame period").Default("8ms").Short('p').Duration()
	BarRow              = kingpin.Flag("bar-row", "Console rows between hit bar and bottom edge").Default("8").Uint()
	RefreshRate         = kingpin.Flag("refresh-rate", "Monitor refresh rate").Default("240.0").Short('R').Float()
	scrollSpeedModifier = kingpin.Flag("scroll-speed", "Scroll speed, lower is faster").Default("3").Short('s').Uint()
	Database            = kingpin.Flag("db", "Replay database path").Default("./replays.db").String()
	History             = kingpin.Flag("history", "Show stored results for this song and exit").Bool()
	Debug               = kingpin.Flag("debug", "Verbose logging").Bool()
	LogFile             = kingpin.Flag("log", "Log file path").Default("debug.log").String()

	ScrollSpeed float64 // Milliseconds of chart per console row
)

// Init parses the command line and computes the derived values. Call
// once from main before anything reads the flags.
func Init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	ScrollSpeed = float64(*scrollSpeedModifier) * 1000 / *RefreshRate
}

// Windows is the configured timing window set for a session.
func Windows() game.Windows {
	return game.Windows{Perfect: *perfect, Good: *good}
}
