package test

import (
	"path/filepath"
	"testing"

	v1 "github.com/budgetcopain/backend/internal/controllers/v1"
	"github.com/budgetcopain/backend/internal/storage"
	"github.com/budgetcopain/backend/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// App returns a controller backed by a fresh database. The store and
// the database connection are closed when the test ends.
func App(t *testing.T) (v1.Controller, storage.Backend) {
	backend, err := storage.Connect(TmpFile(t))
	require.Nil(t, err, "database connection failed")

	s := store.New(backend)
	require.Nil(t, s.Load(), "loading application state failed")

	t.Cleanup(func() {
		s.Close()
		require.Nil(t, backend.Close(), "closing the database failed")
	})

	return v1.Controller{Store: s}, backend
}
