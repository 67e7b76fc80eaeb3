package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nascian/socialnetwork-backend/config"
	"github.com/Nascian/socialnetwork-backend/dao"
	"github.com/Nascian/socialnetwork-backend/dao/cache"
	"github.com/Nascian/socialnetwork-backend/internal/dbtest"
	"github.com/Nascian/socialnetwork-backend/pkg/hashid"
	"github.com/Nascian/socialnetwork-backend/pkg/jwt"
	"github.com/Nascian/socialnetwork-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	conf   *config.Config
	hashID *hashid.Codec
	engine *gin.Engine
	seed   *service.SeedService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.New(t)
	conf, err := config.Parse([]byte("jwt:\n  secret: handler-secret\nhashid:\n  salt: handler-salt\n"))
	require.NoError(t, err)
	codec, err := service.NewHashID(conf)
	require.NoError(t, err)

	users := dao.NewUsers(db)
	postDAO := dao.NewPostDAO(db)
	likeDAO := dao.NewLikeDAO(db)
	likes := &service.LikeService{LikeDAO: likeDAO}

	r := gin.New()
	(&Health{}).RegisterRouter(r)
	(&Auth{AuthService: &service.AuthService{Config: conf, UsersRepo: users}}).RegisterRouter(r)
	(&User{Config: conf, UserService: &service.UserService{
		UsersRepo: users, PostDAO: postDAO, LikeDAO: likeDAO,
		ProfileCache: cache.NewProfileCache(nil, conf), HashID: codec,
	}}).RegisterRouter(r)
	(&Post{
		Config:      conf,
		HashID:      codec,
		PostService: &service.PostService{UsersRepo: users, PostDAO: postDAO, LikeDAO: likeDAO, HashID: codec},
		LikeService: likes,
	}).RegisterRouter(r)

	return &testServer{
		t: t, db: db, conf: conf, hashID: codec, engine: r,
		seed: &service.SeedService{UsersRepo: users, PostDAO: postDAO, LikeService: likes},
	}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(s.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) token(userID uint64) string {
	s.t.Helper()
	tok, err := jwt.GenerateToken([]byte(s.conf.Jwt.Secret), userID, jwt.TypeAccess, time.Hour)
	require.NoError(s.t, err)
	return tok
}

func (s *testServer) login(username string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/auth/login", "", map[string]string{"username": username, "password": "password"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	tok := gjson.Get(w.Body.String(), "token").String()
	require.NotEmpty(s.t, tok)
	return tok
}
