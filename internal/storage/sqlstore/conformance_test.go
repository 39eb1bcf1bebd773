package sqlstore_test

import (
	"context"
	"testing"

	"github.com/yndnr/vmadmin-go/internal/storage"
	"github.com/yndnr/vmadmin-go/internal/storage/storagetest"
)

func TestConformance(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) *storage.DAL {
		dal, err := storage.Open(context.Background(), storage.Config{
			Provider:    storage.ProviderSQLite,
			DSN:         ":memory:",
			AutoMigrate: true,
		}, nil)
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = dal.Close() })
		return dal
	})
}
