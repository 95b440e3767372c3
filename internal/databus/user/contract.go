//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import (
	"context"

	"github.com/google/uuid"
)

type DBRepo interface {
	UpsertUserProfile(ctx context.Context, userID uuid.UUID, name, image *string) error
}

type VersionStore interface {
	Incr(ctx context.Context, scope string) (int64, error)
}
