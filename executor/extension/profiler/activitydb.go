// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package profiler

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	// registers the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

const (
	// bufferSize of the in-memory buffer for storing activity rows
	bufferSize = 1000

	// SQL statement for inserting the totals of a cycle
	insertCycleSQL = `
INSERT INTO cycleActivity (
	cycle, toggles, bits, firstLine, lastLine, overThreshold
) VALUES (
	:cycle, :toggles, :bits, :firstLine, :lastLine, :overThreshold
)
`
	// SQL statement for inserting a reported change of a single signal
	insertSignalSQL = `
INSERT INTO signalActivity (
	cycle, line, name, toggles, bits
) VALUES (
	:cycle, :line, :name, :toggles, :bits
)
`
	// SQL statement for inserting metadata of the analysis run
	insertMetadataSQL = `
INSERT INTO metadata (
	trace, counter, threshold, signalThreshold, counterMode
) VALUES (
	:trace, :counter, :threshold, :signalThreshold, :counterMode
)
`
	// SQL statement for creating activity tables
	createSQL = `
PRAGMA journal_mode = MEMORY;
CREATE TABLE IF NOT EXISTS cycleActivity (
	cycle INTEGER,
	toggles INTEGER,
	bits INTEGER,
	firstLine INTEGER,
	lastLine INTEGER,
	overThreshold BOOLEAN
);
CREATE TABLE IF NOT EXISTS signalActivity (
	cycle INTEGER,
	line INTEGER,
	name TEXT,
	toggles INTEGER,
	bits INTEGER
);
CREATE TABLE IF NOT EXISTS metadata (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	createTimestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	trace TEXT,
	counter TEXT,
	threshold INTEGER,
	signalThreshold INTEGER,
	counterMode BOOLEAN
);
`
	selectCyclesSQL = `SELECT cycle, toggles, bits, firstLine, lastLine, overThreshold FROM cycleActivity ORDER BY cycle`
)

// CycleActivity is the row of a closed cycle.
type CycleActivity struct {
	Cycle         int64  `db:"cycle"`
	Toggles       int    `db:"toggles"`
	Bits          int    `db:"bits"`
	FirstLine     uint64 `db:"firstLine"`
	LastLine      uint64 `db:"lastLine"`
	OverThreshold bool   `db:"overThreshold"`
}

// SignalActivity is the row of a reported change of a single signal.
type SignalActivity struct {
	Cycle   int64  `db:"cycle"`
	Line    uint64 `db:"line"`
	Name    string `db:"name"`
	Toggles int    `db:"toggles"`
	Bits    int    `db:"bits"`
}

// Metadata describes the analysis run stored in the database.
type Metadata struct {
	Trace           string `db:"trace"`
	Counter         string `db:"counter"`
	Threshold       int    `db:"threshold"`
	SignalThreshold int    `db:"signalThreshold"`
	CounterMode     bool   `db:"counterMode"`
}

//go:generate mockgen -source activitydb.go -destination activitydb_mock.go -package profiler

// ActivityDB stores the toggle activity of an analysis run.
type ActivityDB interface {
	AddMetadata(Metadata) error
	AddCycle(CycleActivity) error
	AddSignal(SignalActivity) error
	Flush() error
	Close() error
}

// activityDB is a buffered sqlite3 activity database.
type activityDB struct {
	db      *sqlx.DB
	cycles  []CycleActivity
	signals []SignalActivity
}

// NewActivityDB opens or creates the activity database in dbFile.
func NewActivityDB(dbFile string) (ActivityDB, error) {
	db, err := sqlx.Open("sqlite3", dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %v; %w", dbFile, err)
	}
	adb, err := newActivityDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return adb, nil
}

func newActivityDB(db *sqlx.DB) (*activityDB, error) {
	// create activity schema if not exists
	if _, err := db.Exec(createSQL); err != nil {
		return nil, fmt.Errorf("cannot create activity tables; %w", err)
	}
	return &activityDB{
		db:      db,
		cycles:  make([]CycleActivity, 0, bufferSize),
		signals: make([]SignalActivity, 0, bufferSize),
	}, nil
}

func (a *activityDB) AddMetadata(m Metadata) error {
	if _, err := a.db.NamedExec(insertMetadataSQL, &m); err != nil {
		return fmt.Errorf("failed to insert metadata; %w", err)
	}
	return nil
}

// AddCycle buffers the row of a closed cycle.
func (a *activityDB) AddCycle(c CycleActivity) error {
	a.cycles = append(a.cycles, c)
	if len(a.cycles) == cap(a.cycles) {
		return a.Flush()
	}
	return nil
}

// AddSignal buffers the row of a reported signal change.
func (a *activityDB) AddSignal(s SignalActivity) error {
	a.signals = append(a.signals, s)
	if len(a.signals) == cap(a.signals) {
		return a.Flush()
	}
	return nil
}

// Flush writes all buffered rows in a single transaction.
func (a *activityDB) Flush() error {
	if len(a.cycles) == 0 && len(a.signals) == 0 {
		return nil
	}
	tx, err := a.db.Beginx()
	if err != nil {
		return err
	}
	for i := range a.cycles {
		if _, err = tx.NamedExec(insertCycleSQL, &a.cycles[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("unable to insert cycle %d; %w", a.cycles[i].Cycle, err)
		}
	}
	for i := range a.signals {
		if _, err = tx.NamedExec(insertSignalSQL, &a.signals[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("unable to insert signal %s; %w", a.signals[i].Name, err)
		}
	}
	a.cycles = a.cycles[:0]
	a.signals = a.signals[:0]
	return tx.Commit()
}

// Close flushes buffers of the activity database and closes it.
func (a *activityDB) Close() error {
	defer a.db.Close()
	return a.Flush()
}

// ReadCycles returns all stored cycle rows ordered by cycle.
func ReadCycles(dbFile string) ([]CycleActivity, error) {
	db, err := sqlx.Open("sqlite3", dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %v; %w", dbFile, err)
	}
	defer db.Close()

	var rows []CycleActivity
	if err = db.Select(&rows, selectCyclesSQL); err != nil {
		return nil, fmt.Errorf("cannot read cycles; %w", err)
	}
	return rows, nil
}
