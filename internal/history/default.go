package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"time"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const DefaultPath = "./chunks.db"

// DefaultStore keeps runs in a sqlite database.
type DefaultStore struct {
	Path string

	db *sql.DB
}

// Ratings of one run, stored column wise. Window start times are implied
// by Step.
type seriesCompact struct {
	Step    int
	Overall []float64
	Aim     []float64
	Speed   []float64
}

func compactSeries(results []game.WindowResult, step int) (seriesCompact, error) {
	s := seriesCompact{
		Step:    step,
		Overall: make([]float64, len(results)),
		Aim:     make([]float64, len(results)),
		Speed:   make([]float64, len(results)),
	}
	for i, r := range results {
		if r.Time != i*step {
			return seriesCompact{}, errors.Errorf("window %d starts at %d ms, expected %d", i, r.Time, i*step)
		}
		s.Overall[i] = r.Overall
		s.Aim[i] = r.Aim
		s.Speed[i] = r.Speed
	}
	return s, nil
}

func uncompactSeries(s seriesCompact) []game.WindowResult {
	results := make([]game.WindowResult, len(s.Overall))
	for i := range s.Overall {
		results[i] = game.WindowResult{
			Time: i * s.Step,
			Rating: game.Rating{
				Overall: s.Overall[i],
				Aim:     s.Aim[i],
				Speed:   s.Speed[i],
			},
		}
	}
	return results
}

func (s *DefaultStore) Init() error {
	path := s.Path
	if path == "" {
		path = DefaultPath
	}
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return errors.Wrapf(err, "unable to open history %s", path)
	}

	initStatement := `
	create table if not exists runs
	  (
		  id text not null primary key,
		  sum text not null,
		  name text,
		  window_ms integer,
		  step_ms integer,
		  created integer,
		  results blob
	  );
	create index if not exists runs_sum on runs (sum);
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return errors.Wrapf(err, "unable to create history tables in %s", path)
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// Sum identifies a beatmap by the content that is actually rated.
func Sum(b *game.Beatmap) string {
	h := sha256.New()
	h.Write([]byte(b.Header.Text))
	for _, o := range b.HitObjects {
		h.Write([]byte(o.Line))
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *DefaultStore) Save(b *game.Beatmap, window, step int, results []game.WindowResult) (Run, error) {
	compact, err := compactSeries(results, step)
	if nil != err {
		return Run{}, err
	}
	data, err := json.Marshal(compact)
	if nil != err {
		return Run{}, errors.Wrap(err, "unable to marshal results")
	}

	run := Run{
		ID:      uuid.NewString(),
		Sum:     Sum(b),
		Name:    b.Header.Name(),
		Window:  window,
		Step:    step,
		Created: time.Now().UTC().Truncate(time.Millisecond),
		Results: results,
	}
	_, err = s.db.Exec(
		"insert into runs(id, sum, name, window_ms, step_ms, created, results) values(?, ?, ?, ?, ?, ?, ?)",
		run.ID, run.Sum, run.Name, run.Window, run.Step, run.Created.UnixMilli(), data,
	)
	if nil != err {
		return Run{}, errors.Wrap(err, "unable to save run")
	}
	return run, nil
}

func (s *DefaultStore) Load(b *game.Beatmap) ([]Run, error) {
	runs := []Run{}
	rows, err := s.db.Query(
		"select id, sum, name, window_ms, step_ms, created, results from runs where sum = ? order by created, rowid",
		Sum(b),
	)
	if nil != err {
		return nil, errors.Wrap(err, "unable to load runs")
	}
	defer rows.Close()
	for rows.Next() {
		var run Run
		var created int64
		var data []byte
		if err := rows.Scan(&run.ID, &run.Sum, &run.Name, &run.Window, &run.Step, &created, &data); nil != err {
			return nil, errors.Wrap(err, "unable to read run")
		}
		var compact seriesCompact
		if err := json.Unmarshal(data, &compact); nil != err {
			return nil, errors.Wrapf(err, "unable to unmarshal run %s", run.ID)
		}
		run.Created = time.UnixMilli(created).UTC()
		run.Results = uncompactSeries(compact)
		runs = append(runs, run)
	}
	return runs, errors.Wrap(rows.Err(), "unable to load runs")
}
