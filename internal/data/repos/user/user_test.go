package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/yungbote/aspirepath-backend/internal/data/repos/testutil"
	"github.com/yungbote/aspirepath-backend/internal/domain"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &domain.User{
		ID:           uuid.NewString(),
		Email:        "userrepo@example.com",
		PasswordHash: "pw",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, nil, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.Email, got.Email)

	byEmail, err := repo.GetByEmail(ctx, nil, created.Email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	exists, err := repo.EmailExists(ctx, nil, created.Email)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, nil, "does-not-exist@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	missing, err := repo.GetByID(ctx, nil, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.Create(ctx, nil, &domain.User{ID: uuid.NewString(), Email: created.Email, PasswordHash: "x"})
	assert.Error(t, err, "duplicate email must be rejected")
}

func TestProfileRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	repo := NewProfileRepo(db, testutil.Logger(t))
	ctx := context.Background()
	u := testutil.SeedUser(t, ctx, db, "profile@example.com")

	none, err := repo.GetByUserID(ctx, nil, u.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repo.Upsert(ctx, nil, &domain.Profile{
		UserID: u.ID, EducationLevel: "SHS", FinancialStatus: "LOW",
		Skills: datatypes.JSON(`["Excel"]`), Location: "Kumasi",
	}))
	require.NoError(t, repo.Upsert(ctx, nil, &domain.Profile{
		UserID: u.ID, EducationLevel: "UNIVERSITY", FinancialStatus: "MODERATE",
		Skills: datatypes.JSON(`["Excel","Go"]`), Location: "Accra",
	}))

	got, err := repo.GetByUserID(ctx, nil, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "UNIVERSITY", got.EducationLevel)
	assert.Equal(t, "Accra", got.Location)
	assert.JSONEq(t, `["Excel","Go"]`, string(got.Skills))

	assert.Error(t, repo.Upsert(ctx, nil, &domain.Profile{}))
}
