package storage

import (
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/quantauri/bandplot/model"
)

// SQL stores render records in any database gorm can open.
type SQL struct {
	db *gorm.DB
}

// FromSQL opens the given dialect, migrates the journal table and returns
// a SQL-backed storage.
func FromSQL(dialect gorm.Dialector, opts ...gorm.Option) (Storage, error) {
	db, err := gorm.Open(dialect, opts...)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.AutoMigrate(&model.RenderRecord{})
	if err != nil {
		return nil, err
	}

	return &SQL{
		db: db,
	}, nil
}

// SaveRender appends the record to the journal table.
func (s *SQL) SaveRender(record *model.RenderRecord) error {
	result := s.db.Create(record)
	return result.Error
}

// Renders returns the journal entries that match every filter.
func (s *SQL) Renders(filters ...RecordFilter) ([]*model.RenderRecord, error) {
	records := make([]*model.RenderRecord, 0)
	result := s.db.Order("created_at").Find(&records)
	if result.Error != nil && result.Error != gorm.ErrRecordNotFound {
		return nil, result.Error
	}

	return lo.Filter(records, func(record *model.RenderRecord, _ int) bool {
		for _, filter := range filters {
			if !filter(*record) {
				return false
			}
		}
		return true
	}), nil
}
