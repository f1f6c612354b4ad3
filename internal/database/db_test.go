package database

import (
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
)

func TestDSN(t *testing.T) {
	got := dsn("booker", "s3cret", "db.internal", "3306", "tickets")

	cfg, err := mysql.ParseDSN(got)
	if err != nil {
		t.Fatalf("ParseDSN(%q): %v", got, err)
	}
	if cfg.User != "booker" || cfg.Passwd != "s3cret" || cfg.DBName != "tickets" {
		t.Fatalf("credentials/dbname = %q/%q/%q", cfg.User, cfg.Passwd, cfg.DBName)
	}
	if cfg.Addr != "db.internal:3306" || cfg.Net != "tcp" {
		t.Fatalf("addr = %q over %q", cfg.Addr, cfg.Net)
	}
	if !cfg.ParseTime {
		t.Fatal("parseTime not set; DATETIME columns would scan as []byte")
	}
	if cfg.Loc != time.UTC {
		t.Fatalf("loc = %v, want UTC", cfg.Loc)
	}
}

// An empty password must not leak a stray colon into the DSN.
func TestDSNEmptyPassword(t *testing.T) {
	cfg, err := mysql.ParseDSN(dsn("booker", "", "localhost", "3306", "tickets"))
	if err != nil {
		t.Fatalf("ParseDSN: %v", err)
	}
	if cfg.Passwd != "" {
		t.Fatalf("passwd = %q, want empty", cfg.Passwd)
	}
}
