package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edulab/booklib-backend/internal/dto"
	"github.com/edulab/booklib-backend/internal/http/response"
	"github.com/edulab/booklib-backend/internal/services"
)

type UserHandler struct {
	userData services.UserDataService
}

func NewUserHandler(userData services.UserDataService) *UserHandler {
	return &UserHandler{userData: userData}
}

type UserRequest struct {
	FullName *string `json:"fullName"`
	Title    *string `json:"title"`
	Age      *int    `json:"age"`
}

type BookRequest struct {
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	PageCount *int64  `json:"pageCount"`
}

type UserBookRequest struct {
	UserRequest  *UserRequest   `json:"userRequest"`
	BookRequests []*BookRequest `json:"bookRequests"`
}

type BookResponse struct {
	ID        int64   `json:"id"`
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	PageCount *int64  `json:"pageCount"`
}

func (req *UserBookRequest) userDto() *dto.UserDto {
	if req.UserRequest == nil {
		return &dto.UserDto{}
	}
	return &dto.UserDto{
		FullName: req.UserRequest.FullName,
		Title:    req.UserRequest.Title,
		Age:      req.UserRequest.Age,
	}
}

func (req *UserBookRequest) bookDtos() []*dto.BookDto {
	out := make([]*dto.BookDto, 0, len(req.BookRequests))
	for _, br := range req.BookRequests {
		if br == nil {
			out = append(out, nil)
			continue
		}
		out = append(out, &dto.BookDto{
			Title:     br.Title,
			Author:    br.Author,
			PageCount: br.PageCount,
		})
	}
	return out
}

func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return 0, false
	}
	return id, true
}

// POST /api/v1/user/create
func (uh *UserHandler) CreateUserWithBooks(c *gin.Context) {
	var req UserBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := uh.userData.CreateUserWithBooks(c.Request.Context(), req.userDto(), req.bookDtos())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// PUT /api/v1/user/update/:userId
func (uh *UserHandler) UpdateUserWithBooks(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	var req UserBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := uh.userData.UpdateUserWithBooks(c.Request.Context(), userID, req.userDto(), req.bookDtos())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/v1/user/getWithBooks/:userId
func (uh *UserHandler) GetUserWithBooks(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	res, err := uh.userData.GetUserWithBooks(c.Request.Context(), userID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/v1/user/getUserBooks/:userId
func (uh *UserHandler) GetUserBooks(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	books, err := uh.userData.GetUserBooks(c.Request.Context(), userID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		if b == nil {
			continue
		}
		out = append(out, BookResponse{
			ID:        b.ID,
			Title:     b.Title,
			Author:    b.Author,
			PageCount: b.PageCount,
		})
	}
	response.RespondOK(c, out)
}

// GET /api/v1/user/getUser/:userId
func (uh *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	user, err := uh.userData.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, user)
}

// DELETE /api/v1/user/delete/:userId
func (uh *UserHandler) DeleteUserWithBooks(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := uh.userData.DeleteUserWithBooks(c.Request.Context(), userID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
