package dbHelpers

import (
	"database/sql"
	"fmt"

	"github.com/RemoteState/petstash-server/database"
	"github.com/RemoteState/petstash-server/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

var adminConstraints = map[string]error{
	"admin_users_username_key": ErrUsernameTaken,
}

// InsertAdminUser registers a back office user and records it in the update log
func InsertAdminUser(admin models.RegisterAdmin, hashedPassword string) (int, error) {
	var adminID int
	txError := database.Tx(func(tx *sqlx.Tx) error {
		SQL := `INSERT INTO admin_users(first_name, last_name, employee_id, username, password)
				VALUES ($1, $2, $3, $4, $5) RETURNING id`
		err := tx.Get(&adminID, SQL,
			admin.FirstName,
			admin.LastName,
			admin.EmployeeID,
			admin.Username,
			hashedPassword)
		if err != nil {
			return err
		}

		log := fmt.Sprintf("Registered %s (Employee #%s) in PetStash Back Office.", admin.Username, admin.EmployeeID)
		return insertUpdateLogTx(tx, log, models.AdminSession{AdminID: adminID, Username: admin.Username})
	})
	if txError != nil {
		if mapped := mapConstraintError(txError, adminConstraints); mapped != txError {
			return 0, mapped
		}
		return 0, errors.Wrap(txError, "failed to insert admin user")
	}
	return adminID, nil
}

// GetAdminByUsername returns the admin, password hash included, for a login attempt
func GetAdminByUsername(username string) (*models.AdminUser, error) {
	SQL := `SELECT id,
				first_name,
				last_name,
				employee_id,
				username,
				password,
				created_at
			FROM admin_users
			WHERE username = $1`
	var admin models.AdminUser
	err := database.PetStashDB.Get(&admin, SQL, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAdminNotFound
		}
		return nil, errors.Wrapf(err, "failed to get admin %s", username)
	}
	return &admin, nil
}

func insertUpdateLogTx(tx *sqlx.Tx, log string, admin models.AdminSession) error {
	SQL := `INSERT INTO admin_update_log(log, admin_id, admin_username) VALUES ($1, $2, $3)`
	_, err := tx.Exec(SQL, log, admin.AdminID, admin.Username)
	return err
}

// GetUpdateLog returns the back office update log, newest first
func GetUpdateLog(offset, limit int) ([]models.UpdateLog, error) {
	SQL := `SELECT id,
				log,
				admin_id,
				admin_username,
				created_at
			FROM admin_update_log
			ORDER BY created_at DESC, id DESC
			LIMIT $1 OFFSET $2`
	logs := make([]models.UpdateLog, 0)
	err := database.PetStashDB.Select(&logs, SQL, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get update log")
	}
	return logs, nil
}
