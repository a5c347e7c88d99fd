package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var plural = regexp.MustCompile("ies$")

type BudgetContext string

// ContextURL is the gin context key for the public base URL of the API.
const ContextURL BudgetContext = "personal-budget-url"

func config() *gorm.Config {
	return &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}
}

// Connect opens the SQLite database, migrates it and configures the
// connection pool.
func Connect(dsn string) (*gorm.DB, error) {
	// Migration with foreign keys disabled since sqlite does not support ALTER COLUMN,
	// so tables are copied to a temporary table, then the table is dropped and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	// Close the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors and serializes
	// all transactions
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectPostgres opens a PostgreSQL database and migrates it.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("personal_budget:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("personal_budget:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("personal_budget:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("personal_budget:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("personal_budget:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("personal_budget:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("personal_budget:after_delete", deleteCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("personal_budget:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Row callbacks are used for counts
	return db.Callback().Row().After("*").Register("personal_budget:after_row_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		name = plural.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// Expenses must reference an existing envelope
	if isForeignKeyViolation(db.Error) {
		db.Error = ErrEnvelopeReference
	}
}

// deleteCallback replaces foreign key violations on delete. The only
// restricted reference is expense to envelope.
func deleteCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if isForeignKeyViolation(db.Error) {
		db.Error = ErrEnvelopeHasExpenses
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if errors.Is(db.Error, ErrResourceNotFound) || errors.Is(db.Error, ErrValidation) || errors.Is(db.Error, ErrConflict) || errors.Is(db.Error, ErrGeneral) {
		return
	}

	// A general error where we cannot provide more useful information to the end user
	// We log the error and provide a general error message so that server admins can debug
	log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
	db.Error = ErrGeneral
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) {
		return strings.Contains(sqliteErr.Error(), "FOREIGN KEY constraint failed")
	}

	// pgx reports SQLSTATE 23503 with this message
	return strings.Contains(err.Error(), "violates foreign key constraint")
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Envelope{}, Expense{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
