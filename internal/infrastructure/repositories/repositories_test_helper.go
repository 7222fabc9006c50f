package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createNonceTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE nonces (
		id TEXT PRIMARY KEY,
		value TEXT UNIQUE NOT NULL,
		issued_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createActivationRecordTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE activation_records (
		id TEXT PRIMARY KEY,
		wallet_address TEXT UNIQUE NOT NULL,
		activated_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAffiliateBindingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE affiliate_bindings (
		id TEXT PRIMARY KEY,
		wallet_address TEXT UNIQUE NOT NULL,
		affiliate_id TEXT UNIQUE NOT NULL,
		referral_link TEXT,
		created_at DATETIME
	);`)
}

func createAttributionRecordTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE attribution_records (
		id TEXT PRIMARY KEY,
		referee_wallet TEXT UNIQUE NOT NULL,
		referrer_wallet TEXT NOT NULL,
		affiliate_id TEXT NOT NULL,
		bound_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createConversionRecordTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE conversion_records (
		id TEXT PRIMARY KEY,
		referral_id TEXT UNIQUE NOT NULL,
		referrer_wallet TEXT NOT NULL,
		affiliate_id TEXT NOT NULL,
		status TEXT NOT NULL,
		reason TEXT,
		converted_at DATETIME NOT NULL,
		processed_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}
