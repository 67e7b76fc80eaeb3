package handler

import (
	"github.com/Nascian/socialnetwork-backend/config"
	"github.com/Nascian/socialnetwork-backend/middleware"
	"github.com/Nascian/socialnetwork-backend/pkg/context"
	"github.com/Nascian/socialnetwork-backend/pkg/errs"
	"github.com/Nascian/socialnetwork-backend/pkg/hashid"
	"github.com/Nascian/socialnetwork-backend/pkg/response"
	"github.com/Nascian/socialnetwork-backend/service"
	"github.com/Nascian/socialnetwork-backend/types"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config      *config.Config
	HashID      *hashid.Codec
	PostService service.IPostService
	LikeService service.ILikeService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	g := r.Group("/posts")
	g.Use(authorize)
	g.GET("", context.Wrap(p.List))
	g.POST("", context.Wrap(p.Create))
	g.POST("/:id/like", context.Wrap(p.Like))
	g.DELETE("/:id/like", context.Wrap(p.Unlike))
}

// List 帖子流 ?page=1&pageSize=10
func (p *Post) List(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}
	page, pageSize := types.ParsePagination(c.Query("page"), c.Query("pageSize"))

	feed, err := p.PostService.ListFeed(c.Request.Context(), uid, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, feed)
	return nil
}

func (p *Post) Create(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}
	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("Message is required")
	}

	item, err := p.PostService.CreatePost(c.Request.Context(), uid, req.Message)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

// Like 点赞，新点赞返回 201，已点赞返回 200
func (p *Post) Like(c *gin.Context) error {
	uid, postID, err := p.likeTarget(c)
	if err != nil {
		return err
	}
	res, err := p.LikeService.Like(c.Request.Context(), uid, postID)
	if err != nil {
		return err
	}
	if res.Created {
		response.Created(c, res)
		return nil
	}
	response.Success(c, res)
	return nil
}

func (p *Post) Unlike(c *gin.Context) error {
	uid, postID, err := p.likeTarget(c)
	if err != nil {
		return err
	}
	res, err := p.LikeService.Unlike(c.Request.Context(), uid, postID)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}

// likeTarget resolves the viewer and the :id path parameter. An id that
// does not decode cannot name a post.
func (p *Post) likeTarget(c *gin.Context) (uint64, uint64, error) {
	uid, err := currentUser(c)
	if err != nil {
		return 0, 0, err
	}
	postID, err := p.HashID.Decode(c.Param("id"))
	if err != nil {
		return 0, 0, errs.NotFound("Post not found")
	}
	return uid, postID, nil
}
