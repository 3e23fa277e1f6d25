package handlers

import (
	"net/http"

	"localink_backend/internal/middleware"
	"localink_backend/internal/services"
	"localink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
}

func NewPostHandler(base *BaseHandler, postService services.PostService) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
	}
}

func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.GET("/allposts", h.ListAll)
		posts.GET("/user/:userId", h.ListByOwner)
		posts.POST("/create", middleware.AuthMiddleware(), h.Create)
		posts.GET("/:idposts", h.GetPost)
	}

	// The rating endpoint carries the explorer id in the body, so it stays
	// tokenless like the rest of the original wire contract.
	ratings := rg.Group("/ratings")
	{
		ratings.POST("/rate", h.Rate)
	}

	favorites := rg.Group("/favorites")
	{
		favorites.POST("/:explorerId/:postId", h.AddFavorite)
		favorites.DELETE("/:explorerId/:postId", h.RemoveFavorite)
		favorites.GET("/:explorerId", h.ListFavorites)
	}
}

func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.postService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) ListByOwner(c *gin.Context) {
	posts, err := h.postService.ListByOwner(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.postService.CreatePost(userID, middleware.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Param("idposts"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Rate(c *gin.Context) {
	var req dto.RateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.postService.Rate(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PostHandler) AddFavorite(c *gin.Context) {
	err := h.postService.AddFavorite(c.Param("explorerId"), c.Param("postId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post added to favorites"})
}

func (h *PostHandler) RemoveFavorite(c *gin.Context) {
	err := h.postService.RemoveFavorite(c.Param("explorerId"), c.Param("postId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post removed from favorites"})
}

func (h *PostHandler) ListFavorites(c *gin.Context) {
	posts, err := h.postService.ListFavorites(c.Param("explorerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
