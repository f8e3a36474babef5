package postgres

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/enumlist"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var safeGORMSession = &gorm.Session{NewDB: true}

type DB struct {
	// Some *gorm.DB methods mutate the state of the *gorm.DB backing DB.
	// Every query building method returns a new *DB rather than reusing db.
	db *gorm.DB
}

// NewDB constructs a *DB from a *gorm.DB.
func NewDB(db *gorm.DB) *DB { return &DB{db: db} }

// DB exposes the underlying *gorm.DB backing DB.
//
// NB: use in exceptional circumstances only.
func (db *DB) DB() *gorm.DB { return db.db }

// Debug prints the current query to the logger.
func (db *DB) Debug() *DB { return &DB{db.db.Debug()} }

// **************************************************************************
// FINISHER METHODS
//
// These methods close out a current query, executing it.
// All finisher methods are terminal and cannot be chained.
// **************************************************************************

// Count returns the number of records matching the current query or an error.
func (db *DB) Count() (int64, error) {
	if db.db.Error != nil {
		return 0, db.db.Error
	}

	var count int64
	if err := db.db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %s", enumlist.ErrUnexpected, err)
	}

	return count, nil
}

// Create inserts value into the database, updating value with new data yielding from that insertion.
//
// If a column on value cannot be encoded, such as a list holding a value that is not a member of its enum,
// the codec's error is returned and errors.Is(err, enumlist.ErrNotValid) holds.
// If value violates a unique constraint defined by the database, ErrExists returns.
func (db *DB) Create(value any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	err := db.db.Session(&gorm.Session{FullSaveAssociations: false}).Create(value).Error
	switch {
	case err == nil:
		return nil

	case isCodecErr(err):
		return fmt.Errorf("failed creating %T: %w", value, err)

	case errors.Is(err, schema.ErrUnsupportedDataType), errors.Is(err, gorm.ErrInvalidData):
		return fmt.Errorf("%w: %T is not a database table", enumlist.ErrNotValid, value)

	case errConstraintViolation.MatchString(err.Error()), errSQLSyntax.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", enumlist.ErrNotValid, err)

	case errUniqViolation.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", enumlist.ErrExists, err)

	default:
		return fmt.Errorf("%w: failed creating %T: %s", enumlist.ErrUnexpected, value, err)
	}
}

// Delete removes the database record for value.
//
// If no record is removed, ErrNotFound returns.
func (db *DB) Delete(value any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	res := db.db.Delete(value)
	if res.Error != nil {
		return fmt.Errorf("%w: failed deleting %T: %s", enumlist.ErrUnexpected, value, res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %T", enumlist.ErrNotFound, value)
	}

	return nil
}

// Exec executes SQL query sql, passing values to it.
//
// If the query executed does not affect any records, Exec return ErrNotFound.
func (db *DB) Exec(sql string, values ...any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	res := db.db.Exec(sql, values...)
	if res.Error != nil {
		return fmt.Errorf("%w: %s", enumlist.ErrUnexpected, res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: exec failed to affect any rows", enumlist.ErrNotFound)
	}

	return nil
}

// Find retrieves all records matching the current query and stores them in dest.
//
// If no matches are found, Find returns ErrNotFound.
// If a stored column cannot be decoded, the codec's error is returned.
func (db *DB) Find(dest any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	res := db.db.Find(dest)
	err := res.Error
	switch {
	case err == nil && res.RowsAffected == 0:
		return fmt.Errorf("%w", enumlist.ErrNotFound)

	case err == nil:
		return nil

	case isCodecErr(err):
		return fmt.Errorf("failed scanning into %T: %w", dest, err)

	case errSQLScan.MatchString(err.Error()), errSQLSyntax.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", enumlist.ErrNotValid, err)

	default:
		return fmt.Errorf("%w: %s", enumlist.ErrUnexpected, err)
	}
}

// First retrieves a single record from the database matching the query and stores it in dest.
//
// If no matches are found, First returns ErrNotFound.
// If a stored column cannot be decoded, the codec's error is returned.
func (db *DB) First(dest any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	err := db.db.First(dest).Error
	switch {
	case err == nil:
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %T", enumlist.ErrNotFound, dest)

	case isCodecErr(err):
		return fmt.Errorf("failed scanning into %T: %w", dest, err)

	case errSQLSyntax.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", enumlist.ErrNotValid, err)

	default:
		return fmt.Errorf("%w: %s", enumlist.ErrUnexpected, err)
	}
}

// **************************************************************************
// QUERY BUILDING METHODS
//
// Query building methods initiate a query and then add clauses to it
// until a finisher method is called.
// **************************************************************************

// Limit applies a LIMIT clause to the current query.
func (db *DB) Limit(limit int) *DB {
	// NOTE(dlk): GORM interprets negatives by not applying a LIMIT clause.
	// PostgreSQL errors on negative numbers:
	//     ERROR:  LIMIT must not be negative
	//
	// This Limit mirrors PostgreSQL, not GORM.
	if limit < 0 {
		gdb := db.DB().Session(safeGORMSession)
		_ = gdb.AddError(fmt.Errorf("%w: limit must not be negative", enumlist.ErrNotValid))
		return &DB{db: gdb}
	}

	return &DB{db: db.db.Limit(limit)}
}

// Model declares the table used for the query.
func (db *DB) Model(model any) *DB { return &DB{db: db.db.Model(model)} }

// Order applies an ORDER BY clause to the current query.
func (db *DB) Order(order string) *DB { return &DB{db: db.db.Order(order)} }

// Where applies the query fragment to the current query as a WHERE or AND clause.
func (db *DB) Where(query any, args ...any) *DB { return &DB{db: db.db.Where(query, args...)} }

// isCodecErr asserts whether err originates from an enumlist codec,
// either binding a parameter or decoding a stored column.
func isCodecErr(err error) bool {
	var (
		valErr *enumlist.ValidationError
		decErr *enumlist.DecodeError
	)

	return errors.As(err, &valErr) || errors.As(err, &decErr)
}
