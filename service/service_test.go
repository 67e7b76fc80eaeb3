package service

import (
	"testing"

	"github.com/Nascian/socialnetwork-backend/config"
	"github.com/Nascian/socialnetwork-backend/dao"
	"github.com/Nascian/socialnetwork-backend/dao/cache"
	"github.com/Nascian/socialnetwork-backend/internal/dbtest"
	"github.com/Nascian/socialnetwork-backend/pkg/hashid"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	conf   *config.Config
	hashID *hashid.Codec

	auth  *AuthService
	users *UserService
	posts *PostService
	likes *LikeService
	seed  *SeedService
}

func newFixture(t *testing.T, rdb *redis.Client) *fixture {
	t.Helper()

	db := dbtest.New(t)
	conf, err := config.Parse([]byte("hashid:\n  salt: test-salt\n"))
	require.NoError(t, err)
	codec, err := NewHashID(conf)
	require.NoError(t, err)

	usersRepo := dao.NewUsers(db)
	postDAO := dao.NewPostDAO(db)
	likeDAO := dao.NewLikeDAO(db)

	f := &fixture{db: db, conf: conf, hashID: codec}
	f.auth = &AuthService{Config: conf, UsersRepo: usersRepo}
	f.users = &UserService{
		UsersRepo:    usersRepo,
		PostDAO:      postDAO,
		LikeDAO:      likeDAO,
		ProfileCache: cache.NewProfileCache(rdb, conf),
		HashID:       codec,
	}
	f.posts = &PostService{UsersRepo: usersRepo, PostDAO: postDAO, LikeDAO: likeDAO, HashID: codec}
	f.likes = &LikeService{LikeDAO: likeDAO}
	f.seed = &SeedService{UsersRepo: usersRepo, PostDAO: postDAO, LikeService: f.likes}
	return f
}
