package testdata

import (
	"encoding/json"

	"everyrhythm/internal/game"
)

// A short fixture: 16 beats of a 120 BPM kitchen loop.
const data = `{
	"title": "Kitchen Loop",
	"tempo": 120.0,
	"beats": [0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0,
	          4.5, 5.0, 5.5, 6.0, 6.5, 7.0, 7.5, 8.0]
}`

func GetBeatMap() (*game.BeatMap, error) {
	var bm game.BeatMap
	if err := json.Unmarshal([]byte(data), &bm); nil != err {
		return nil, err
	}
	return &bm, nil
}
