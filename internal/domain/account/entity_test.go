//go:build unit

package account_test

import (
	"strings"
	"testing"
	"time"

	"points-rewards/internal/domain/account"
	"points-rewards/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var later = time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

type testCase struct {
	name   string
	mutate func(*builder.AccountBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewAccountBuilder()
			tc.mutate(b)

			acc, err := b.BuildDomain()

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, acc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, acc)
		})
	}
}

func TestAccount(t *testing.T) {
	t.Run("new account is active", func(t *testing.T) {
		acc, err := builder.NewAccountBuilder().BuildDomain()

		require.NoError(t, err)
		assert.True(t, acc.IsActive())
		assert.Equal(t, int64(500), acc.Points())
		assert.Equal(t, "Ana Rojas", acc.FullName())
		assert.Nil(t, acc.LastLogin())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "mixed case is accepted", mutate: func(b *builder.AccountBuilder) { b.WithEmail("Ana@Example.COM") }},
			{name: "empty", mutate: func(b *builder.AccountBuilder) { b.WithEmail("") }, errIs: account.ErrInvalidEmail},
			{name: "no domain", mutate: func(b *builder.AccountBuilder) { b.WithEmail("ana@") }, errIs: account.ErrInvalidEmail},
		})
	})

	t.Run("fields", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank first name", mutate: func(b *builder.AccountBuilder) { b.WithFirstName("  ") }, errIs: account.ErrInvalidName},
			{name: "long first name", mutate: func(b *builder.AccountBuilder) { b.WithFirstName(strings.Repeat("a", 101)) }, errIs: account.ErrInvalidName},
			{name: "zero user id", mutate: func(b *builder.AccountBuilder) { b.WithUserID(0) }, errIs: account.ErrInvalidUserID},
			{name: "negative points", mutate: func(b *builder.AccountBuilder) { b.WithPoints(-1) }, errIs: account.ErrInvalidPoints},
			{name: "unknown role", mutate: func(b *builder.AccountBuilder) { b.WithRole("owner") }, errIs: account.ErrInvalidRole},
			{name: "upper-case role", mutate: func(b *builder.AccountBuilder) { b.WithRole("ADMIN") }},
		})
	})

	t.Run("email is stored lower-case", func(t *testing.T) {
		acc, err := builder.NewAccountBuilder().WithEmail("Ana.Rojas@Example.com").BuildDomain()

		require.NoError(t, err)
		assert.Equal(t, "ana.rojas@example.com", acc.Email().Value())
	})
}

func TestAccountPoints(t *testing.T) {
	acc := builder.NewAccountBuilder().WithPoints(100).BuildStored()

	require.NoError(t, acc.Credit(50, later))
	assert.Equal(t, int64(150), acc.Points())
	assert.Equal(t, later, acc.UpdatedAt())

	require.ErrorIs(t, acc.Debit(151, later), account.ErrInsufficientFunds)
	assert.Equal(t, int64(150), acc.Points())

	require.NoError(t, acc.Debit(150, later))
	assert.Zero(t, acc.Points())

	require.ErrorIs(t, acc.Credit(0, later), account.ErrInvalidPoints)
	require.ErrorIs(t, acc.Debit(-1, later), account.ErrInvalidPoints)
}

func TestAccountLifecycle(t *testing.T) {
	acc := builder.NewAccountBuilder().BuildStored()

	acc.Deactivate(later)
	assert.False(t, acc.IsActive())
	assert.Equal(t, account.StatusInactive, acc.Status())

	acc.Activate(later)
	assert.True(t, acc.IsActive())

	require.NoError(t, acc.AssignRole(account.RoleManager, later))
	assert.Equal(t, account.RoleManager, acc.Role())
	require.ErrorIs(t, acc.AssignRole(account.Role("owner"), later), account.ErrInvalidRole)
	assert.Equal(t, account.RoleManager, acc.Role())
}

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role account.Role
		want []account.Permission
	}{
		{account.RoleAdmin, []account.Permission{account.PermRead, account.PermWrite, account.PermDelete, account.PermAdmin, account.PermManageBenefits}},
		{account.RoleManager, []account.Permission{account.PermRead, account.PermWrite, account.PermManageBenefits}},
		{account.RoleUser, []account.Permission{account.PermRead, account.PermWrite}},
		{account.RoleViewer, []account.Permission{account.PermRead}},
		{account.Role("ghost"), []account.Permission{}},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.role.Permissions()); diff != "" {
				t.Errorf("Permissions() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	assert.True(t, account.RoleAdmin.Can(account.PermManageBenefits))
	assert.False(t, account.RoleUser.Can(account.PermAdmin))
}
