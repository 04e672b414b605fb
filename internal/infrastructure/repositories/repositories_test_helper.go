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
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createMerchantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchants (
		id TEXT PRIMARY KEY,
		business_name TEXT NOT NULL,
		business_address TEXT,
		wallet_address TEXT NOT NULL,
		chain_id INTEGER NOT NULL,
		accepted_token TEXT NOT NULL,
		collectible_name TEXT,
		collectible_description TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPaymentRecordTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payment_records (
		id TEXT PRIMARY KEY,
		user_wallet TEXT NOT NULL,
		merchant_id TEXT NOT NULL,
		amount_usd TEXT NOT NULL,
		amount_token TEXT NOT NULL,
		token_symbol TEXT NOT NULL,
		chain_id INTEGER NOT NULL,
		route_type TEXT NOT NULL,
		tx_hash TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		points_awarded INTEGER DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createQRCodeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE qr_codes (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		amount_usd TEXT NOT NULL,
		qr_data TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}
