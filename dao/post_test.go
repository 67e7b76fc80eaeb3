package dao

import (
	"context"
	"testing"
	"time"

	"github.com/Nascian/socialnetwork-backend/internal/dbtest"
	"github.com/Nascian/socialnetwork-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostDAOCreate(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	author := dbtest.CreateUser(t, db, "author")
	d := NewPostDAO(db)

	p := &models.Post{UserID: author.ID, Message: "first", LikeCount: 99}
	require.NoError(t, d.Create(ctx, p))
	assert.NotZero(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := d.FindById(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Zero(t, got.LikeCount)
	assert.Equal(t, "first", got.Message)

	missing, err := d.FindById(ctx, p.ID+1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostDAOPageOrdering(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	author := dbtest.CreateUser(t, db, "author")
	d := NewPostDAO(db)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var created []*models.Post
	for i := 0; i < 5; i++ {
		created = append(created, dbtest.CreatePost(t, db, author, "msg", base.Add(time.Duration(i)*time.Minute)))
	}
	// same timestamp as the newest post; id decides
	tie := dbtest.CreatePost(t, db, author, "tie", base.Add(4*time.Minute))

	page, err := d.Page(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, tie.ID, page[0].ID)
	assert.Equal(t, created[4].ID, page[1].ID)
	assert.Equal(t, created[3].ID, page[2].ID)
	assert.Equal(t, "author", page[0].User.Username)

	page, err = d.Page(ctx, 3, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, created[0].ID, page[2].ID)

	page, err = d.Page(ctx, 3, 6)
	require.NoError(t, err)
	assert.Empty(t, page)

	total, err := d.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)
}

func TestPostDAOCountByUser(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	alice := dbtest.CreateUser(t, db, "alice")
	bob := dbtest.CreateUser(t, db, "bob")
	now := time.Now()
	dbtest.CreatePost(t, db, alice, "one", now)
	dbtest.CreatePost(t, db, alice, "two", now)
	dbtest.CreatePost(t, db, bob, "three", now)
	d := NewPostDAO(db)

	n, err := d.CountByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	found, err := d.FindByAuthorMessage(ctx, bob.ID, "three")
	require.NoError(t, err)
	require.NotNil(t, found)

	found, err = d.FindByAuthorMessage(ctx, bob.ID, "one")
	require.NoError(t, err)
	assert.Nil(t, found)
}
