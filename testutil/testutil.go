package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"go.aira.dev/staffing/airadb"
)

// Test rows use IDs in this range so cleanup leaves other data alone
const (
	minTestID = 1000
	maxTestID = 9999
)

// TestDB represents a test database connection with utilities
type TestDB struct {
	*sql.DB
	queries *airadb.Queries
	ctx     context.Context
}

// NewTestDB connects to TEST_DATABASE_DSN and creates the schema. The
// test is skipped when the variable isn't set.
func NewTestDB(t *testing.T) *TestDB {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping integration test")
	}

	ctx := context.Background()
	dbconn, err := airadb.OpenDB(ctx, dsn, airadb.Options{ConnectTimeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	for _, stmt := range airadb.SchemaStatements() {
		if _, err := dbconn.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("Failed to create schema: %v", err)
		}
	}

	tdb := &TestDB{
		DB:      dbconn,
		queries: airadb.New(dbconn),
		ctx:     ctx,
	}
	tdb.CleanupTestData(t)

	return tdb
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	tdb.DB.Close()
}

// Queries returns the airadb queries instance
func (tdb *TestDB) Queries() *airadb.Queries {
	return tdb.queries
}

// Context returns the test context
func (tdb *TestDB) Context() context.Context {
	return tdb.ctx
}

// CleanupTestData removes all test data from the database
func (tdb *TestDB) CleanupTestData(t *testing.T) {
	// Clean up in reverse dependency order
	queries := []string{
		fmt.Sprintf("DELETE FROM assignments WHERE ra_id BETWEEN %d AND %d OR program_id BETWEEN %d AND %d",
			minTestID, maxTestID, minTestID, maxTestID),
		fmt.Sprintf("DELETE FROM programs WHERE program_id BETWEEN %d AND %d", minTestID, maxTestID),
		fmt.Sprintf("DELETE FROM ra WHERE ra_id BETWEEN %d AND %d", minTestID, maxTestID),
	}

	for _, query := range queries {
		if _, err := tdb.ExecContext(tdb.ctx, query); err != nil {
			t.Logf("Error cleaning up: %v", err)
		}
	}
}

// DataFactory helps generate realistic test data
type DataFactory struct {
	tdb *TestDB
}

// NewDataFactory creates a new data factory
func NewDataFactory(tdb *TestDB) *DataFactory {
	return &DataFactory{tdb: tdb}
}

// CreateTestMember creates an RA
func (df *DataFactory) CreateTestMember(t *testing.T, id int64, name, semesterJoined string) {
	checkID(t, id)
	_, err := df.tdb.ExecContext(df.tdb.ctx,
		"INSERT INTO ra (ra_id, name, semester_joined) VALUES (?, ?, ?)",
		id, name, semesterJoined)
	if err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}
}

// CreateTestProgram creates a program
func (df *DataFactory) CreateTestProgram(t *testing.T, id int64, name string, date time.Time, category string, scale int) {
	checkID(t, id)
	_, err := df.tdb.ExecContext(df.tdb.ctx,
		"INSERT INTO programs (program_id, program_name, program_date, category, scale) VALUES (?, ?, ?, ?, ?)",
		id, name, date, category, scale)
	if err != nil {
		t.Fatalf("Failed to create test program: %v", err)
	}
}

// CreateTestAssignment staffs a member on a program
func (df *DataFactory) CreateTestAssignment(t *testing.T, memberID, programID int64, role string) {
	_, err := df.tdb.ExecContext(df.tdb.ctx,
		"INSERT INTO assignments (ra_id, program_id, ra_role) VALUES (?, ?, ?)",
		memberID, programID, role)
	if err != nil {
		t.Fatalf("Failed to create test assignment: %v", err)
	}
}

func checkID(t *testing.T, id int64) {
	t.Helper()
	if id < minTestID || id > maxTestID {
		t.Fatalf("test ID %d outside %d-%d", id, minTestID, maxTestID)
	}
}
