package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

var uniqueUsername = unique("username", func(u entity.User) string { return u.Username })

// User operations

// GetUser finds a user by ID
func (s *GormStorage) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	return findOne(ctx, s.db, Users.toEntity, "id = ?", id)
}

// GetUserByUsername finds a user by username
func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return findOne(ctx, s.db, Users.toEntity, "username = ?", username)
}

// CreateUser persists a new user
func (s *GormStorage) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	u := *user
	u.ID = 0
	return insert(ctx, s.db, u, usersFromEntity, Users.toEntity, uniqueUsername)
}

// Agency operations

// GetAgency finds an agency by ID
func (s *GormStorage) GetAgency(ctx context.Context, id int64) (*entity.Agency, error) {
	return findOne(ctx, s.db, Agencies.toEntity, "id = ?", id)
}

// ListAgencies returns every agencies
func (s *GormStorage) ListAgencies(ctx context.Context) ([]*entity.Agency, error) {
	return findAll(ctx, s.db, Agencies.toEntity, nil)
}

// CreateAgency persists a new agency
func (s *GormStorage) CreateAgency(ctx context.Context, agency *entity.Agency) (*entity.Agency, error) {
	a := *agency
	a.ID = 0
	return insert(ctx, s.db, a, agenciesFromEntity, Agencies.toEntity)
}

// UpdateAgency applies a partial update to an agency
func (s *GormStorage) UpdateAgency(ctx context.Context, id int64, patch entity.AgencyPatch) (*entity.Agency, error) {
	return modify(ctx, s.db, id, patch.Apply, agenciesFromEntity, Agencies.toEntity)
}

// Corporate operations

// GetCorporate finds a corporate by ID
func (s *GormStorage) GetCorporate(ctx context.Context, id int64) (*entity.Corporate, error) {
	return findOne(ctx, s.db, Corporates.toEntity, "id = ?", id)
}

// ListCorporates returns every corporates
func (s *GormStorage) ListCorporates(ctx context.Context) ([]*entity.Corporate, error) {
	return findAll(ctx, s.db, Corporates.toEntity, nil)
}

// CreateCorporate persists a new corporate
func (s *GormStorage) CreateCorporate(ctx context.Context, corporate *entity.Corporate) (*entity.Corporate, error) {
	c := *corporate
	c.ID = 0
	return insert(ctx, s.db, c, corporatesFromEntity, Corporates.toEntity)
}

// UpdateCorporate applies a partial update to a corporate
func (s *GormStorage) UpdateCorporate(ctx context.Context, id int64, patch entity.CorporatePatch) (*entity.Corporate, error) {
	return modify(ctx, s.db, id, patch.Apply, corporatesFromEntity, Corporates.toEntity)
}
