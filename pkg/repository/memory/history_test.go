package memory_test

import (
	"testing"

	"github.com/m-mizutani/bq2ee/pkg/repository/memory"
	"github.com/m-mizutani/bq2ee/pkg/repository/testhelper"
)

func TestMemoryHistoryRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
