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

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		full_name TEXT,
		phone TEXT,
		password_hash TEXT,
		account_type TEXT,
		account_status TEXT,
		moderator_notification_methods TEXT,
		is_active BOOLEAN,
		is_approved BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createEmailCodeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE email_verification_codes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		code TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createPhoneCodeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE phone_verification_codes (
		id TEXT PRIMARY KEY,
		phone TEXT NOT NULL,
		code TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createResetCodeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE password_reset_codes (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		phone TEXT,
		code TEXT NOT NULL,
		via_sms BOOLEAN,
		created_at DATETIME
	);`)
}

func createPageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE pages (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		title TEXT NOT NULL,
		intro TEXT,
		body TEXT,
		price TEXT,
		published_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
