package storage

import (
	"encoding/json"
	"log"
	"strconv"
	"sync/atomic"

	"github.com/tidwall/buntdb"

	"github.com/quantauri/bandplot/model"
)

// Bunt stores render records as JSON documents in a buntdb database.
type Bunt struct {
	lastID int64
	db     *buntdb.DB
}

// FromMemory creates a volatile database, useful for tests.
func FromMemory() (Storage, error) {
	return newBunt(":memory:")
}

// FromFile creates a database persisted at the given path.
func FromFile(file string) (Storage, error) {
	return newBunt(file)
}

func newBunt(sourceFile string) (Storage, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, err
	}

	err = db.CreateIndex("created_index", "*", buntdb.IndexJSON("created_at"))
	if err != nil {
		return nil, err
	}

	return &Bunt{
		db: db,
	}, nil
}

func (b *Bunt) getID() int64 {
	return atomic.AddInt64(&b.lastID, 1)
}

// SaveRender assigns the record an ID and appends it to the journal.
func (b *Bunt) SaveRender(record *model.RenderRecord) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		record.ID = b.getID()
		content, err := json.Marshal(record)
		if err != nil {
			return err
		}

		_, _, err = tx.Set(strconv.FormatInt(record.ID, 10), string(content), nil)
		return err
	})
}

// Renders returns the journal entries that match every filter, ordered by
// creation time.
func (b *Bunt) Renders(filters ...RecordFilter) ([]*model.RenderRecord, error) {
	records := make([]*model.RenderRecord, 0)
	err := b.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend("created_index", func(key, value string) bool {
			var record model.RenderRecord
			err := json.Unmarshal([]byte(value), &record)
			if err != nil {
				log.Println(err)
				return true
			}

			for _, filter := range filters {
				if ok := filter(record); !ok {
					return true
				}
			}
			records = append(records, &record)

			return true
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
