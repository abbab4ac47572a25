package inmemdb

import (
	"context"
	"sort"

	"github.com/Yash22022006-glitch/Student-Attendence/core/user"
)

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}

	repo.db.users.RLock()
	defer repo.db.users.RUnlock()

	users := make([]user.User, 0, len(repo.db.users.table))
	for _, usr := range repo.db.users.table {
		users = append(users, *usr)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	if err := repo.db.wait(ctx); err != nil {
		return user.User{}, err
	}

	repo.db.users.RLock()
	defer repo.db.users.RUnlock()

	if usr, ok := repo.db.users.table[id]; ok {
		return *usr, nil
	}
	return user.User{}, user.ErrNotFound
}
