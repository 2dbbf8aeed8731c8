package kv

import (
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	db, mock := redismock.NewClientMock()
	st := NewRedisStore(db, "suren:")

	mock.ExpectGet("suren:rmHistory").SetErr(redis.Nil)
	_, err := st.Get("rmHistory")
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectSet("suren:rmHistory", "[]", 0).SetVal("OK")
	require.NoError(t, st.Set("rmHistory", "[]"))

	mock.ExpectGet("suren:rmHistory").SetVal("[]")
	v, err := st.Get("rmHistory")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	mock.ExpectDel("suren:rmHistory").SetVal(1)
	require.NoError(t, st.Delete("rmHistory"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Errors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	st := NewRedisStore(db, "")

	mock.ExpectGet("rmGoals").SetErr(errors.New("connection refused"))
	_, err := st.Get("rmGoals")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))

	mock.ExpectSet("rmGoals", "{}", 0).SetErr(errors.New("readonly"))
	assert.Error(t, st.Set("rmGoals", "{}"))

	mock.ExpectDel("rmGoals").SetErr(errors.New("readonly"))
	assert.Error(t, st.Delete("rmGoals"))

	require.NoError(t, mock.ExpectationsWereMet())
}
