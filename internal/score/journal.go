package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Journal persists finished sessions so they can be replayed through
// the engine later. Only the input times and the beat fingerprint are
// stored. Scores are recomputed on load, never persisted.
type Journal struct {
	db *sql.DB
}

// Replay is one stored session for a beat map.
type Replay struct {
	ID      string
	Sum     string
	Created time.Time
	Inputs  []float64 // Input times in milliseconds, in press order
}

func (j *Journal) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists replays
	  (
		  id text not null primary key,
		  sum text not null,
		  created integer not null,
		  inputs bytearray
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return err
	}

	j.db = db
	return nil
}

func (j *Journal) Deinit() {
	if nil != j.db {
		j.db.Close()
	}
}

// Fingerprint identifies a beat list independent of its source file.
func Fingerprint(beats []float64) string {
	h := sha256.New()
	for _, b := range beats {
		binary.Write(h, binary.LittleEndian, b)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (j *Journal) Record(beats []float64, inputs []float64) {
	data, err := json.Marshal(inputs)
	if nil != err {
		log.Error("unable to marshal inputs", "err", err)
		return
	}
	_, err = j.db.Exec("insert into replays(id, sum, created, inputs) values(?, ?, ?, ?)",
		uuid.NewString(), Fingerprint(beats), time.Now().Unix(), data)
	if nil != err {
		log.Error("unable to save replay", "err", err)
	}
}

// History returns the stored replays for a beat list, oldest first.
func (j *Journal) History(beats []float64) []Replay {
	replays := []Replay{}
	rows, err := j.db.Query(
		"select id, sum, created, inputs from replays where sum = ? order by created",
		Fingerprint(beats))
	if nil != err {
		if err != sql.ErrNoRows {
			log.Error("unable to load replays", "err", err)
		}
		return replays
	}
	defer rows.Close()

	for rows.Next() {
		var r Replay
		var created int64
		var data []byte
		if err := rows.Scan(&r.ID, &r.Sum, &created, &data); nil != err {
			log.Error("unable to scan replay", "err", err)
			continue
		}
		if err := json.Unmarshal(data, &r.Inputs); nil != err {
			log.Error("unable to unmarshal replay inputs", "err", err)
			continue
		}
		r.Created = time.Unix(created, 0)
		replays = append(replays, r)
	}
	return replays
}
