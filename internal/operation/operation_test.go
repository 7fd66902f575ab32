package operation_test

import (
	"context"
	"errors"
	"testing"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/mocks"
	"skills-tracker-backend/internal/operation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func allow() operation.Authorizer {
	return operation.AuthorizerFunc(func(ctx context.Context, userID int64) error { return nil })
}

func deny() operation.Authorizer {
	return operation.AuthorizerFunc(func(ctx context.Context, userID int64) error {
		return apperrors.NewAuthorizationError("denied")
	})
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("runs work when authorized", func(t *testing.T) {
		op := operation.New("answer", 7, allow(), func(ctx context.Context) (int, error) {
			return 42, nil
		})

		got, err := op.Execute(ctx)

		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, "answer", op.Name())
		assert.Equal(t, int64(7), op.UserID())
	})

	t.Run("never runs work when unauthorized", func(t *testing.T) {
		called := false
		op := operation.New("answer", 7, deny(), func(ctx context.Context) (int, error) {
			called = true
			return 42, nil
		})

		got, err := op.Execute(ctx)

		assert.True(t, apperrors.IsAuthorization(err))
		assert.Zero(t, got)
		assert.False(t, called)
	})

	t.Run("returns the work error", func(t *testing.T) {
		op := operation.New("answer", 7, allow(), func(ctx context.Context) (int, error) {
			return 0, apperrors.ErrSkillNotFound
		})

		_, err := op.Execute(ctx)

		assert.ErrorIs(t, err, apperrors.ErrSkillNotFound)
	})

	t.Run("missing authorizer denies", func(t *testing.T) {
		op := operation.New[int]("answer", 7, nil, func(ctx context.Context) (int, error) {
			t.Fatal("work must not run")
			return 0, nil
		})

		assert.True(t, apperrors.IsAuthorization(op.CanExecute(ctx)))
	})

	t.Run("authorizer receives the acting user", func(t *testing.T) {
		var seen int64
		authorizer := operation.AuthorizerFunc(func(ctx context.Context, userID int64) error {
			seen = userID
			return nil
		})
		op := operation.New("noop", 99, authorizer, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, nil
		})

		require.NoError(t, op.CanExecute(ctx))
		assert.Equal(t, int64(99), seen)
	})
}

func TestGlobalPermissionAuthorizer(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	testCases := []struct {
		name       string
		held       models.PermissionSet
		loadErr    error
		sufficient []models.GlobalPermission
		check      func(t *testing.T, err error)
	}{
		{
			name:       "single matching permission is enough",
			held:       models.NewPermissionSet(models.GlobalPermissionSkillsListAdmin),
			sufficient: operation.SkillsListAdmins,
			check:      func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:       "admin satisfies the skills list set",
			held:       models.NewPermissionSet(models.GlobalPermissionAdmin, models.GlobalPermissionGuest),
			sufficient: operation.SkillsListAdmins,
			check:      func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:       "reader may vote",
			held:       models.NewPermissionSet(models.GlobalPermissionReader),
			sufficient: operation.Voters,
			check:      func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:       "guest alone may not vote",
			held:       models.NewPermissionSet(models.GlobalPermissionGuest),
			sufficient: operation.Voters,
			check:      func(t *testing.T, err error) { assert.True(t, apperrors.IsAuthorization(err)) },
		},
		{
			name:       "disjoint sets are rejected",
			held:       models.NewPermissionSet(models.GlobalPermissionTeamsListAdmin, models.GlobalPermissionReader),
			sufficient: operation.SkillsListAdmins,
			check:      func(t *testing.T, err error) { assert.True(t, apperrors.IsAuthorization(err)) },
		},
		{
			name:       "no permissions at all",
			held:       models.NewPermissionSet(),
			sufficient: operation.Admins,
			check:      func(t *testing.T, err error) { assert.True(t, apperrors.IsAuthorization(err)) },
		},
		{
			name:       "unknown user is rejected",
			loadErr:    gorm.ErrRecordNotFound,
			sufficient: operation.Voters,
			check:      func(t *testing.T, err error) { assert.True(t, apperrors.IsAuthorization(err)) },
		},
		{
			name:       "store failures are not authorization failures",
			loadErr:    storeErr,
			sufficient: operation.Voters,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, storeErr)
				assert.False(t, apperrors.IsAuthorization(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mocks.NewMockUserRepositoryInterface(ctrl)
			users.EXPECT().GetUserGlobalPermissionsByID(gomock.Any(), int64(5)).Return(tc.held, tc.loadErr)

			authorizer := operation.NewGlobalPermissionAuthorizer(users, "test", tc.sufficient...)

			tc.check(t, authorizer.Authorize(ctx, 5))
		})
	}
}

func TestTeamAdminAuthorizer(t *testing.T) {
	ctx := context.Background()

	t.Run("admin member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		members := mocks.NewMockTeamMemberRepositoryInterface(ctrl)
		members.EXPECT().GetTeamMember(gomock.Any(), int64(3), int64(5)).
			Return(&models.TeamMember{TeamID: 3, UserID: 5, IsAdmin: true}, nil)

		assert.NoError(t, operation.NewTeamAdminAuthorizer(members, "test", 3).Authorize(ctx, 5))
	})

	t.Run("plain member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		members := mocks.NewMockTeamMemberRepositoryInterface(ctrl)
		members.EXPECT().GetTeamMember(gomock.Any(), int64(3), int64(5)).
			Return(&models.TeamMember{TeamID: 3, UserID: 5}, nil)

		err := operation.NewTeamAdminAuthorizer(members, "test", 3).Authorize(ctx, 5)
		assert.True(t, apperrors.IsAuthorization(err))
	})

	t.Run("not a member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		members := mocks.NewMockTeamMemberRepositoryInterface(ctrl)
		members.EXPECT().GetTeamMember(gomock.Any(), int64(3), int64(5)).Return(nil, gorm.ErrRecordNotFound)

		err := operation.NewTeamAdminAuthorizer(members, "test", 3).Authorize(ctx, 5)
		assert.True(t, apperrors.IsAuthorization(err))
	})
}

func TestAnyOf(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("timeout")

	assert.NoError(t, operation.AnyOf(deny(), allow()).Authorize(ctx, 1))
	assert.True(t, apperrors.IsAuthorization(operation.AnyOf(deny(), deny()).Authorize(ctx, 1)))
	assert.True(t, apperrors.IsAuthorization(operation.AnyOf().Authorize(ctx, 1)))

	failing := operation.AuthorizerFunc(func(ctx context.Context, userID int64) error { return storeErr })
	assert.ErrorIs(t, operation.AnyOf(deny(), failing, allow()).Authorize(ctx, 1), storeErr)

	calls := 0
	counting := operation.AuthorizerFunc(func(ctx context.Context, userID int64) error {
		calls++
		return nil
	})
	assert.NoError(t, operation.AnyOf(allow(), counting).Authorize(ctx, 1))
	assert.Zero(t, calls)
}
