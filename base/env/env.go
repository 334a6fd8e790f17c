package env

import (
	"os"
)

// ServiceName example: ledger-api
func ServiceName() string {
	return os.Getenv("K_SERVICE")
}

// RevisionName example: ledger-api-00042-xkz
func RevisionName() string {
	return os.Getenv("K_REVISION")
}
