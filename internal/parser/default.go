package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"everyrhythm/internal/game"
)

// DefaultParser reads the file a beat detection pass leaves next to a
// song: either the analyzer's JSON dump or a plain text file carrying
// one beat timestamp per line.
type DefaultParser struct{}

type beatMapFile struct {
	Title string    `json:"title"`
	Tempo float64   `json:"tempo"`
	Beats []float64 `json:"beats"`
}

func (p *DefaultParser) Parse(file string) (*game.BeatMap, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}

	if path.Ext(file) == ".json" {
		return p.parseJSON(file, data)
	}
	return p.parseText(file, data)
}

func (p *DefaultParser) parseJSON(file string, data []byte) (*game.BeatMap, error) {
	var bm beatMapFile
	if err := json.Unmarshal(data, &bm); nil != err {
		return nil, fmt.Errorf("unable to parse %v: %w", file, err)
	}
	title := bm.Title
	if title == "" {
		title = titleOf(file)
	}
	return &game.BeatMap{Title: title, Tempo: bm.Tempo, Beats: bm.Beats}, nil
}

func (p *DefaultParser) parseText(file string, data []byte) (*game.BeatMap, error) {
	beats := []float64{}
	str := strings.ReplaceAll(string(data), "\r", "")
	for i, line := range strings.Split(str, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		beat, err := strconv.ParseFloat(line, 64)
		if nil != err {
			return nil, fmt.Errorf("unable to parse %v line %v: %w", file, i+1, err)
		}
		beats = append(beats, beat)
	}
	return &game.BeatMap{Title: titleOf(file), Beats: beats}, nil
}

func titleOf(file string) string {
	name := path.Base(file)
	return strings.TrimSuffix(name, path.Ext(name))
}
