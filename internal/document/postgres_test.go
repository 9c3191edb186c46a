package document

import (
	"os"
	"testing"

	"nishat/internal/database"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "nishat")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "nishat")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func TestPostgresBackend(t *testing.T) {
	db, err := database.Connect(testDSN())
	if err != nil {
		t.Skipf("skipping integration test: DB not available: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if _, err := db.Exec(`DELETE FROM documents WHERE name = 'contract'`); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM documents WHERE name = 'contract'`) })

	exerciseBackend(t, NewPostgresBackend(db))
}
