package iocache

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/huangsam/gitpulse/schema"
)

func resetGlobals() {
	initOnce = sync.Once{}  // Reset for test
	closeOnce = sync.Once{} // Reset for test
	Manager.Lock()
	Manager.reports = nil
	Manager.runs = nil
	Manager.Unlock()
}

func TestStores(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		resetGlobals()
		dir := t.TempDir()
		cachePath := filepath.Join(dir, "cache.db")
		runPath := filepath.Join(dir, "runs.db")

		err := InitStores(schema.SQLiteBackend, cachePath, schema.SQLiteBackend, runPath)
		if err != nil {
			t.Fatalf("Failed to initialize persistence: %v", err)
		}

		if Manager.GetReportStore() == nil {
			t.Fatal("Report store is nil")
		}
		if Manager.GetRunStore() == nil {
			t.Fatal("Run store is nil")
		}

		CloseStores()

		if _, err := os.Stat(cachePath); os.IsNotExist(err) {
			t.Fatal("Cache database file was not created")
		}
		if _, err := os.Stat(runPath); os.IsNotExist(err) {
			t.Fatal("Run database file was not created")
		}
	})

	t.Run("idempotent setup", func(t *testing.T) {
		resetGlobals()
		dir := t.TempDir()
		cachePath := filepath.Join(dir, "cache.db")

		// Multiple initializations should be safe (sync.Once)
		err1 := InitStores(schema.SQLiteBackend, cachePath, "", "")
		err2 := InitStores(schema.SQLiteBackend, cachePath, "", "")

		if err1 != nil {
			t.Fatalf("First init failed: %v", err1)
		}
		if err2 != nil {
			t.Fatalf("Second init failed: %v", err2)
		}

		// Multiple closes should be safe (sync.Once)
		CloseStores()
		CloseStores()
	})

	t.Run("run tracking disabled by default", func(t *testing.T) {
		resetGlobals()
		cachePath := filepath.Join(t.TempDir(), "cache.db")

		if err := InitStores(schema.SQLiteBackend, cachePath, "", ""); err != nil {
			t.Fatalf("Failed to initialize persistence: %v", err)
		}
		defer CloseStores()

		if Manager.GetReportStore() == nil {
			t.Fatal("Report store is nil")
		}
		if Manager.GetRunStore() != nil {
			t.Fatal("Run store should be disabled when no backend is configured")
		}
	})

	t.Run("none backend", func(t *testing.T) {
		resetGlobals()

		if err := InitStores(schema.NoneBackend, "", schema.NoneBackend, ""); err != nil {
			t.Fatalf("Failed to initialize persistence with none backend: %v", err)
		}
		defer CloseStores()

		if Manager.GetReportStore() == nil {
			t.Fatal("Report store is nil")
		}
		if Manager.GetRunStore() == nil {
			t.Fatal("Run store is nil")
		}
	})
}

func TestClearReports(t *testing.T) {
	t.Run("sqlite removes file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "cache.db")
		if err := os.WriteFile(dbPath, []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := ClearReports(schema.SQLiteBackend, dbPath, ""); err != nil {
			t.Fatalf("ClearReports failed: %v", err)
		}
		if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
			t.Error("expected the database file to be removed")
		}
	})

	t.Run("sqlite missing file is fine", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "absent.db")
		if err := ClearReports(schema.SQLiteBackend, dbPath, ""); err != nil {
			t.Errorf("clearing a missing file should succeed: %v", err)
		}
	})

	t.Run("sqlite empty path rejected", func(t *testing.T) {
		if err := ClearReports(schema.SQLiteBackend, "", ""); err == nil {
			t.Error("expected an empty path to be rejected")
		}
	})

	t.Run("none backend is a no-op", func(t *testing.T) {
		if err := ClearReports(schema.NoneBackend, "", ""); err != nil {
			t.Errorf("none backend should be a no-op: %v", err)
		}
	})

	t.Run("unsupported backend", func(t *testing.T) {
		if err := ClearReports("redis", "", ""); err == nil {
			t.Error("expected an unsupported backend to be rejected")
		}
	})
}

func TestClearRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	if err := os.WriteFile(dbPath, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ClearRuns(schema.SQLiteBackend, dbPath, ""); err != nil {
		t.Fatalf("ClearRuns failed: %v", err)
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Error("expected the database file to be removed")
	}

	if err := ClearRuns(schema.NoneBackend, "", ""); err != nil {
		t.Errorf("none backend should be a no-op: %v", err)
	}
}
