package handler

import (
	"os"
	"testing"

	"github.com/lugezz/marketminds-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}
