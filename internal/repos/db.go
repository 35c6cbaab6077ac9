package repos

import (
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Options configures the pool opened by OpenDB.
type Options struct {
	Driver string
	DSN    string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// Bootstrap creates the courses table when it is missing.
	Bootstrap bool
	// SeedDemo inserts a couple of courses into an empty table.
	SeedDemo bool
}

func OpenDB(o Options) (*DB, error) {
	if o.Driver == "" {
		o.Driver = DriverSQLite
	}
	db, err := sqlx.Open(o.Driver, o.DSN)
	if err != nil {
		return nil, err
	}
	applyPool(db, o)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", o.Driver, err)
	}
	log.Printf("[db] connected driver=%s", o.Driver)

	if o.Bootstrap {
		if err := ensureSchema(db, o.Driver); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}
	if o.SeedDemo {
		if err := seedIfEmpty(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return NewDB(db), nil
}

func applyPool(db *sqlx.DB, o Options) {
	// Every connection to ":memory:" is a separate database, so pin the pool
	// to a single connection that never expires.
	if o.Driver == DriverSQLite && strings.Contains(o.DSN, ":memory:") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		return
	}
	if o.MaxOpenConns > 0 {
		db.SetMaxOpenConns(o.MaxOpenConns)
	}
	if o.MaxIdleConns > 0 {
		db.SetMaxIdleConns(o.MaxIdleConns)
	}
	if o.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(o.ConnMaxLifetime)
	}
}

func ensureSchema(db *sqlx.DB, driver string) error {
	schema := `
CREATE TABLE IF NOT EXISTS courses(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  thumbnail_url TEXT,
  price NUMERIC NOT NULL,
  category_id INTEGER,
  instructor_id INTEGER,
  average_rating NUMERIC,
  total_ratings INTEGER,
  is_published BOOLEAN
);
CREATE INDEX IF NOT EXISTS idx_courses_category ON courses(category_id);
`
	if driver == DriverMySQL {
		// MySQL rejects multi-statement Exec unless multiStatements=true,
		// so the index lives inside the table definition.
		schema = `
CREATE TABLE IF NOT EXISTS courses(
  id INT AUTO_INCREMENT PRIMARY KEY,
  title VARCHAR(255) NOT NULL,
  description TEXT NOT NULL,
  thumbnail_url VARCHAR(255) NULL,
  price DECIMAL(12,2) NOT NULL,
  category_id INT NULL,
  instructor_id INT NULL,
  average_rating DECIMAL(3,2) NULL,
  total_ratings INT NULL,
  is_published TINYINT(1) NULL,
  INDEX idx_courses_category (category_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	}
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM courses`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo courses")

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	rows := [][]any{
		{"JavaScript Fundamentals", "Belajar dasar-dasar JavaScript", "https://example.com/js.jpg", 199000, 1, 1, true},
		{"Go untuk Backend", "Membangun REST API dengan Go", "https://example.com/go.jpg", 249000, 1, 2, false},
	}
	for _, r := range rows {
		if _, err := tx.Exec(`
			INSERT INTO courses (title, description, thumbnail_url, price, category_id, instructor_id, is_published)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, r...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// MySQLParams describes a MySQL server the way the deployment env does.
type MySQLParams struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	// Timezone is an IANA name or a fixed offset such as "+07:00".
	Timezone string
}

// MySQLDSN builds a DSN with utf8mb4 and found-rows semantics, so an UPDATE
// that rewrites identical values still reports the row as affected.
func MySQLDSN(p MySQLParams) (string, error) {
	mc := mysql.NewConfig()
	mc.User = p.User
	mc.Passwd = p.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	mc.DBName = p.Database
	mc.ClientFoundRows = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	if p.Timezone != "" {
		loc, err := parseLocation(p.Timezone)
		if err != nil {
			return "", err
		}
		mc.Loc = loc
	}
	return mc.FormatDSN(), nil
}

func parseLocation(tz string) (*time.Location, error) {
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc, nil
	}
	t, err := time.Parse("-07:00", tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q", tz)
	}
	_, off := t.Zone()
	return time.FixedZone("UTC"+tz, off), nil
}
