package dbHelpers

import (
	"testing"

	"github.com/RemoteState/petstash-server/database/testdb"
	"github.com/RemoteState/petstash-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopUserLifecycle(t *testing.T) {
	testdb.Setup(t)

	userID, err := InsertShopUser(models.RegisterShopUser{
		FirstName: "Sam",
		LastName:  "Doe",
		Username:  "samdoe",
		Email:     "sam@example.com",
	}, "hashed")
	require.NoError(t, err)

	assert.Equal(t, ErrUsernameTaken, CheckShopUserAvailable("samdoe", "other@example.com"))
	assert.Equal(t, ErrEmailTaken, CheckShopUserAvailable("someone", "sam@example.com"))
	assert.NoError(t, CheckShopUserAvailable("someone", "other@example.com"))

	user, err := GetShopUserByUsername("samdoe")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "hashed", user.Password)
	assert.False(t, user.Address.Valid)

	require.NoError(t, ModifyShopUserAddress(userID, models.ShopUserAddress{
		Address: "1 Main St",
		City:    "Austin",
		State:   "TX",
		Zipcode: "73301",
	}))
	user, err = GetShopUserById(userID)
	require.NoError(t, err)
	assert.Equal(t, "Austin", user.City.String)

	assert.Equal(t, ErrShopUserNotFound, ModifyShopUserAddress(999, models.ShopUserAddress{}))
	_, err = GetShopUserById(999)
	assert.Equal(t, ErrShopUserNotFound, err)
	_, err = GetShopUserByUsername("nobody")
	assert.Equal(t, ErrShopUserNotFound, err)

	count, err := GetShopUserCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInsertAdminUserLogsRegistration(t *testing.T) {
	testdb.Setup(t)

	adminID, err := InsertAdminUser(models.RegisterAdmin{
		FirstName:  "Kim",
		LastName:   "Lee",
		EmployeeID: "1001",
		Username:   "kimlee",
	}, "hashed")
	require.NoError(t, err)

	admin, err := GetAdminByUsername("kimlee")
	require.NoError(t, err)
	assert.Equal(t, adminID, admin.ID)
	assert.Equal(t, "1001", admin.EmployeeID)

	logs, err := GetUpdateLog(0, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Registered kimlee (Employee #1001) in PetStash Back Office.", logs[0].Log)
	assert.Equal(t, adminID, logs[0].AdminID)
	assert.Equal(t, "kimlee", logs[0].AdminUsername)

	_, err = GetAdminByUsername("nobody")
	assert.Equal(t, ErrAdminNotFound, err)
}

func TestGetUpdateLogPages(t *testing.T) {
	db := testdb.Setup(t)
	admin := seedAdmin(t, db)
	for _, name := range []string{"A1", "B2", "C3"} {
		_, err := InsertCategory(models.CategoryForm{Name: name, Route: name}, admin)
		require.NoError(t, err)
	}

	logs, err := GetUpdateLog(1, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Created new product category: B2.", logs[0].Log)
}
