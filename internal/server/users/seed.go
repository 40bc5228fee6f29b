package users

import (
	"context"
	"database/sql"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/fabienvalero1/userdir/internal/dbx"
	"github.com/fabienvalero1/userdir/internal/server/models"
)

var seedRoles = []string{models.RoleUser, models.RoleAdmin, models.RoleEditor}

// Seed fills an empty store with n synthetic users in a single transaction.
// A store that already holds records is left untouched, so restarting the
// server never duplicates data.
func Seed(ctx context.Context, db *sql.DB, dialect string, n int) (int, error) {
	repo := NewRepository(db, dialect)

	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 || n <= 0 {
		return 0, nil
	}

	// Emails carry a UNIQUE constraint; dedupe before inserting so one
	// generator collision cannot abort the whole transaction.
	seen := make(map[string]struct{}, n)

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		txRepo := NewRepository(tx, dialect)

		for inserted := 0; inserted < n; {
			email := strings.ToLower(gofakeit.Email())
			if _, dup := seen[email]; dup {
				continue
			}
			seen[email] = struct{}{}

			u := &models.User{
				Name:  gofakeit.Name(),
				Email: email,
				Role:  seedRoles[gofakeit.Number(0, len(seedRoles)-1)],
			}
			if _, err := txRepo.Create(ctx, u); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}
