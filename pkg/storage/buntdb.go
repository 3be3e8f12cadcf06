package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/raykavin/momentum/pkg/logger"
	"github.com/tidwall/buntdb"
)

// ErrNotFound is returned when no record matches a key
var ErrNotFound = errors.New("record not found")

const updateIndex = "update_index"

// Record is one computed indicator series. Indicator carries every setting
// that changes the values (see indicator.Identity); Offset is kept apart.
type Record struct {
	Pair      string    `json:"pair"`
	Timeframe string    `json:"timeframe"`
	Indicator string    `json:"indicator"`
	Offset    int       `json:"offset"`
	Values    []float64 `json:"values"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key identifies the record inside the store
func (r Record) Key() string {
	return Key(r.Pair, r.Timeframe, r.Indicator, r.Offset)
}

// Key builds the storage key of a pair, timeframe, indicator and offset.
// A zero offset adds nothing, e.g. "BTCUSDT:1h:AO_5_34" and
// "BTCUSDT:1h:AO_5_34@3".
func Key(pair, timeframe, indicator string, offset int) string {
	key := strings.Join([]string{pair, timeframe, indicator}, ":")
	if offset != 0 {
		key += "@" + strconv.Itoa(offset)
	}
	return key
}

// RecordFilter selects records returned by Records
type RecordFilter func(Record) bool

// WithPair keeps records of the given pair
func WithPair(pair string) RecordFilter {
	return func(r Record) bool { return r.Pair == pair }
}

// WithIndicatorPrefix keeps records whose indicator name starts with prefix,
// e.g. "AO_" for every Awesome Oscillator configuration.
func WithIndicatorPrefix(prefix string) RecordFilter {
	return func(r Record) bool { return strings.HasPrefix(r.Indicator, prefix) }
}

// BuntStorage persists computed series in a BuntDB file or in memory
type BuntStorage struct {
	db  *buntdb.DB
	log logger.Logger
}

// FromMemory creates an in-memory storage
func FromMemory() (*BuntStorage, error) {
	return NewBuntStorage(":memory:", logger.Nop{})
}

// FromFile creates a file-based storage
func FromFile(file string, log logger.Logger) (*BuntStorage, error) {
	return NewBuntStorage(file, log)
}

// NewBuntStorage opens sourceFile and prepares the update index
func NewBuntStorage(sourceFile string, log logger.Logger) (*BuntStorage, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	err = db.CreateIndex(updateIndex, "*", buntdb.IndexJSON("updated_at"))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	if log == nil {
		log = logger.Nop{}
	}

	return &BuntStorage{db: db, log: log}, nil
}

// Save inserts or replaces a record. A zero UpdatedAt is set to now.
func (b *BuntStorage) Save(record *Record) error {
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	content, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	return b.db.Update(func(tx *buntdb.Tx) error {
		if _, _, err := tx.Set(record.Key(), string(content), nil); err != nil {
			return fmt.Errorf("failed to store record: %w", err)
		}
		return nil
	})
}

// Load fetches a single record
func (b *BuntStorage) Load(pair, timeframe, indicator string, offset int) (Record, error) {
	var record Record

	key := Key(pair, timeframe, indicator, offset)
	err := b.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(key)
		if errors.Is(err, buntdb.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(value), &record)
	})

	return record, err
}

// Delete removes a record. Deleting a missing key is not an error.
func (b *BuntStorage) Delete(pair, timeframe, indicator string, offset int) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(Key(pair, timeframe, indicator, offset))
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		}
		return err
	})
}

// Records lists records oldest update first, keeping those that pass
// every filter.
func (b *BuntStorage) Records(filters ...RecordFilter) ([]Record, error) {
	records := make([]Record, 0)

	err := b.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend(updateIndex, func(key, value string) bool {
			var record Record
			if err := json.Unmarshal([]byte(value), &record); err != nil {
				b.log.WithError(err).WithField("key", key).Warn("skipping unreadable record")
				return true
			}

			for _, filter := range filters {
				if !filter(record) {
					return true
				}
			}

			records = append(records, record)
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over records: %w", err)
	}

	return records, nil
}

// Close closes the database
func (b *BuntStorage) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
