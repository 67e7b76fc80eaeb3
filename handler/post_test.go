package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/Nascian/socialnetwork-backend/internal/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestCreatePostHandler(t *testing.T) {
	s := newTestServer(t)
	demo := dbtest.CreateUser(t, s.db, "demo1")
	tok := s.token(demo.ID)

	w := s.do(http.MethodPost, "/posts", tok, map[string]string{"message": "  hi there "})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := w.Body.String()
	assert.Equal(t, "hi there", gjson.Get(body, "message").String())
	assert.EqualValues(t, 0, gjson.Get(body, "likeCount").Int())
	assert.False(t, gjson.Get(body, "likedByMe").Bool())
	assert.Equal(t, s.hashID.Encode(demo.ID), gjson.Get(body, "user.id").String())

	w = s.do(http.MethodPost, "/posts", tok, map[string]string{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Message is required", gjson.Get(w.Body.String(), "message").String())

	w = s.do(http.MethodPost, "/posts", tok, map[string]string{"message": strings.Repeat("a", 281)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Message must be at most 280 characters", gjson.Get(w.Body.String(), "message").String())

	w = s.do(http.MethodPost, "/posts", tok, map[string]string{"message": strings.Repeat("a", 280)})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListPostsHandler(t *testing.T) {
	s := newTestServer(t)
	demo := dbtest.CreateUser(t, s.db, "demo1")
	tok := s.token(demo.ID)
	for i := 0; i < 3; i++ {
		w := s.do(http.MethodPost, "/posts", tok, map[string]string{"message": "post"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := s.do(http.MethodGet, "/posts?page=abc&pageSize=2", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.EqualValues(t, 1, gjson.Get(body, "page").Int())
	assert.EqualValues(t, 2, gjson.Get(body, "pageSize").Int())
	assert.EqualValues(t, 3, gjson.Get(body, "total").Int())
	assert.EqualValues(t, 2, gjson.Get(body, "totalPages").Int())
	assert.True(t, gjson.Get(body, "hasNextPage").Bool())
	assert.Len(t, gjson.Get(body, "items").Array(), 2)

	w = s.do(http.MethodGet, "/posts?page=5&pageSize=1000", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.EqualValues(t, 5, gjson.Get(body, "page").Int())
	assert.EqualValues(t, 50, gjson.Get(body, "pageSize").Int())
	assert.True(t, gjson.Get(body, "items").IsArray())
	assert.Empty(t, gjson.Get(body, "items").Array())
}

func TestLikeHandlers(t *testing.T) {
	s := newTestServer(t)
	demo := dbtest.CreateUser(t, s.db, "demo1")
	tok := s.token(demo.ID)

	w := s.do(http.MethodPost, "/posts", tok, map[string]string{"message": "like me"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := gjson.Get(w.Body.String(), "id").String()

	w = s.do(http.MethodPost, "/posts/"+id+"/like", tok, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 1, gjson.Get(w.Body.String(), "likeCount").Int())
	assert.True(t, gjson.Get(w.Body.String(), "likedByMe").Bool())

	w = s.do(http.MethodPost, "/posts/"+id+"/like", tok, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, gjson.Get(w.Body.String(), "likeCount").Int())

	w = s.do(http.MethodDelete, "/posts/"+id+"/like", tok, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, gjson.Get(w.Body.String(), "likeCount").Int())
	assert.False(t, gjson.Get(w.Body.String(), "likedByMe").Bool())

	w = s.do(http.MethodDelete, "/posts/"+id+"/like", tok, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, gjson.Get(w.Body.String(), "likeCount").Int())

	w = s.do(http.MethodPost, "/posts/not-a-post/like", tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", gjson.Get(w.Body.String(), "message").String())

	w = s.do(http.MethodDelete, "/posts/"+s.hashID.Encode(987654321)+"/like", tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// demo1 logs in, sees both seeded posts, unlikes and relikes demo2's post.
func TestDemoFlow(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.seed.Seed(context.Background()))

	tok := s.login("demo1")

	w := s.do(http.MethodGet, "/posts", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := gjson.Get(w.Body.String(), "items").Array()
	require.Len(t, items, 2)

	var demo2Post string
	for _, it := range items {
		assert.EqualValues(t, 1, it.Get("likeCount").Int())
		if it.Get("user.alias").String() == "demo.two" {
			demo2Post = it.Get("id").String()
			assert.True(t, it.Get("likedByMe").Bool())
		} else {
			assert.False(t, it.Get("likedByMe").Bool())
		}
	}
	require.NotEmpty(t, demo2Post)

	w = s.do(http.MethodDelete, "/posts/"+demo2Post+"/like", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, gjson.Get(w.Body.String(), "likeCount").Int())

	w = s.do(http.MethodPost, "/posts/"+demo2Post+"/like", tok, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 1, gjson.Get(w.Body.String(), "likeCount").Int())

	w = s.do(http.MethodGet, "/me/stats", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.EqualValues(t, 1, gjson.Get(body, "posts").Int())
	assert.EqualValues(t, 1, gjson.Get(body, "likesGiven").Int())
	assert.EqualValues(t, 1, gjson.Get(body, "likesReceived").Int())
}
