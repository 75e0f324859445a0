package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishhq/quotation-api/internal/domain"
)

func TestCustomerUpdateLocksIdentityOnceReferenced(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)

	_, err := env.customers.Update(env.ctx, project.CustomerID, &domain.UpdateCustomerRequest{
		Name:          "Anand Kumar",
		ContactNumber: "9888877665",
		Address:       "12 MG Road",
	})
	assert.ErrorIs(t, err, ErrCustomerInUse)

	// Fields outside the identity stay editable.
	updated, err := env.customers.Update(env.ctx, project.CustomerID, &domain.UpdateCustomerRequest{
		Name:          "Anand",
		ContactNumber: "9888877665",
		Address:       "44 Brigade Road",
		Email:         "anand@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "44 Brigade Road", updated.Address)
}

func TestCustomerDeleteRefusedWhileReferenced(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)

	assert.ErrorIs(t, env.customers.Delete(env.ctx, project.CustomerID), ErrCustomerInUse)

	require.NoError(t, env.projects.Delete(env.ctx, project.ID))
	assert.NoError(t, env.customers.Delete(env.ctx, project.CustomerID))
}

func TestCustomerListSearchesNameAndContact(t *testing.T) {
	env := newTestEnv(t)

	for _, req := range []*domain.CreateCustomerRequest{
		{Name: "Anand", ContactNumber: "9888877665", Address: "12 MG Road"},
		{Name: "Bhavna", ContactNumber: "9777766554", Address: "4 Park Street"},
	} {
		_, err := env.customers.Create(env.ctx, req)
		require.NoError(t, err)
	}

	byName, err := env.customers.List(env.ctx, 1, 20, "anand")
	require.NoError(t, err)
	assert.EqualValues(t, 1, byName.Total)

	byContact, err := env.customers.List(env.ctx, 1, 20, "977776")
	require.NoError(t, err)
	assert.EqualValues(t, 1, byContact.Total)
}
