// Package users declares the repository contract for account records.
package users

import (
	"context"

	"github.com/vkarpovs/crudboard/internal/server/models"
)

// Repository defines persistence operations for users. Lookups return
// common.ErrorNotFound when no row matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
