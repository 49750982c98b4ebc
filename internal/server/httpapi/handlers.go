package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reomoon/memo/internal/common"
)

type codeRequest struct {
	Code string `json:"code"`
}

type bodyRequest struct {
	Body string `json:"body"`
}

type textRequest struct {
	Text string `json:"text"`
}

// bind decodes the JSON body into req. An empty body leaves req zero so the
// service reports the missing field.
func bind(c *gin.Context, req any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(req); err != nil {
		return fmt.Errorf("%w: invalid request body", common.ErrorValidation)
	}
	return nil
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) authURL(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authUrl": h.auth.AuthURL(c.Query("redirect"))})
}

func (h *handlers) callback(c *gin.Context) {
	var req codeRequest
	if err := bind(c, &req); err != nil {
		h.writeError(c, err, "")
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Code)
	if err != nil {
		h.writeError(c, err, "GitHub authentication failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId":    session.Token,
		"sessionToken": session.Token,
		"user":         session.User,
	})
}

func (h *handlers) user(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context(), c.GetHeader(common.SessionHeaderName))
	if err != nil {
		h.writeError(c, err, "failed to load session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *handlers) logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), c.GetHeader(common.SessionHeaderName)); err != nil {
		h.writeError(c, err, "logout failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *handlers) generateTitle(c *gin.Context) {
	var req bodyRequest
	if err := bind(c, &req); err != nil {
		h.writeError(c, err, "")
		return
	}
	title, err := h.text.GenerateTitle(c.Request.Context(), req.Body)
	if err != nil {
		h.writeError(c, err, "title generation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": title})
}

func (h *handlers) summarize(c *gin.Context) {
	var req bodyRequest
	if err := bind(c, &req); err != nil {
		h.writeError(c, err, "")
		return
	}
	summary, err := h.text.Summarize(c.Request.Context(), req.Body)
	if err != nil {
		h.writeError(c, err, "summary generation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *handlers) classifyCategory(c *gin.Context) {
	var req textRequest
	if err := bind(c, &req); err != nil {
		h.writeError(c, err, "")
		return
	}
	category, err := h.text.ClassifyCategory(c.Request.Context(), req.Text)
	if err != nil {
		h.writeError(c, err, "category classification failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}
