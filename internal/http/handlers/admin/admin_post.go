package admin

import (
	handlershared "github.com/art-exhibition/internal/http/handlers/shared"
	"github.com/art-exhibition/internal/http/response"
	"github.com/art-exhibition/internal/service"

	"github.com/gin-gonic/gin"
)

// PostRequest 创建/更新文章请求
type PostRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail"`
	IsPublished *bool  `json:"isPublished"`
}

func (r PostRequest) toInput() service.PostInput {
	return service.PostInput{
		Slug:        r.Slug,
		Title:       r.Title,
		Summary:     r.Summary,
		Content:     r.Content,
		Thumbnail:   r.Thumbnail,
		IsPublished: r.IsPublished,
	}
}

// GetAdminPosts 文章列表
func (h *Handler) GetAdminPosts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	posts, total, err := h.PostService.ListAdmin(c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, posts, response.BuildPagination(page, pageSize, total))
}

// GetAdminPost 文章详情
func (h *Handler) GetAdminPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	post, err := h.PostService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, postErrorRules)
		return
	}
	response.Success(c, post)
}

// CreatePost 创建文章
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.PostService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, postErrorRules)
		return
	}
	response.Created(c, post)
}

// UpdatePost 更新文章
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PostRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.PostService.Update(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, postErrorRules)
		return
	}
	response.Success(c, post)
}

// DeletePost 删除文章
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.PostService.Delete(id); err != nil {
		respondWithMappedError(c, err, postErrorRules)
		return
	}
	response.OK(c)
}
