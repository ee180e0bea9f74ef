package client

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClient_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM clients WHERE username=$1`)).
		WithArgs("jdoe").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO clients (last_name, first_name, username, credit)`)).
		WithArgs("Doe", "Jane", "jdoe", 0.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO client_stats (total_spent, purchased_items, client_id)`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO passwords (salt, hash, client_id)`)).
		WithArgs("c2FsdA==", "aGFzaA==", int64(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	reg := Registration{LastName: "Doe", FirstName: "Jane", Username: "jdoe", Password: "hunter22"}
	c, err := repo.CreateClient(context.Background(), reg, "aGFzaA==", "c2FsdA==")
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, "jdoe", c.Username)
	assert.Zero(t, c.Credit)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClient_UsernameTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM clients WHERE username=$1`)).
		WithArgs("jdoe").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err = repo.CreateClient(context.Background(), Registration{Username: "jdoe", Password: "hunter22"}, "h", "s")
	require.ErrorIs(t, err, ErrUsernameTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClient_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, last_name, first_name, username, credit FROM clients WHERE id=$1`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "last_name", "first_name", "username", "credit"}))

	_, err = repo.GetClient(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, salt, hash, client_id FROM passwords WHERE client_id=$1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "salt", "hash", "client_id"}).
			AddRow(int64(1), "c2FsdA==", "aGFzaA==", int64(7)))

	p, err := repo.GetPassword(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "c2FsdA==", p.Salt)
	assert.Equal(t, int64(7), p.ClientID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStats_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE client_stats SET total_spent=$1, purchased_items=$2 WHERE client_id=$3`)).
		WithArgs(10.0, 2, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStats(context.Background(), ClientStats{TotalSpent: 10, PurchasedItems: 2, ClientID: 404})
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPurchase_Increments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE client_stats`).
		WithArgs(20.2995, 3, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RecordPurchase(context.Background(), 7, 3, 20.2995))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClient_RemovesDependents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM passwords WHERE client_id=$1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM client_stats WHERE client_id=$1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id=$1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteClient(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
