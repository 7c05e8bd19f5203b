// Package mock provides in-memory infrastructure doubles for integration tests.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var sharedDb *Db

// Db wraps a shared in-memory SQLite database standing in for PostgreSQL.
type Db struct {
	Conn   *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The connection is created once per process; scenarios call Reset between runs.
func NewDb(models ...any) *Db {
	dbOnce.Do(func() {
		sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
		if err != nil {
			panic(err)
		}
		// A single connection keeps the shared memory database alive.
		sqlDB.SetMaxOpenConns(1)

		conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			panic("failed to open test database: " + err.Error())
		}

		if err := conn.AutoMigrate(models...); err != nil {
			panic("failed to migrate test database: " + err.Error())
		}

		sharedDb = &Db{Conn: conn, models: models}
	})

	return sharedDb
}

// Reset deletes every row from every migrated table.
func (d *Db) Reset() error {
	for _, model := range d.models {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}
