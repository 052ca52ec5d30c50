package handler

import (
	"net/http"

	"shortlink-manager/internal/auth"
	"shortlink-manager/internal/shortcode"
	"shortlink-manager/internal/shortlink"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LinkHandler 链接相关的处理器
type LinkHandler struct {
	service  *shortlink.Service
	resolver *shortlink.Resolver
	lister   *shortlink.Lister
	codes    *shortcode.Generator
	logger   *zap.SugaredLogger
}

// NewLinkHandler 创建处理器实例
func NewLinkHandler(service *shortlink.Service, resolver *shortlink.Resolver, lister *shortlink.Lister, codes *shortcode.Generator, logger *zap.SugaredLogger) *LinkHandler {
	return &LinkHandler{service: service, resolver: resolver, lister: lister, codes: codes, logger: logger.Named("handler")}
}

// SuggestionResponse 建议短码
type SuggestionResponse struct {
	ShortCode string `json:"shortCode" example:"aZ3kP9x"`
}

// LinkRequest 创建与编辑链接的请求体
type LinkRequest struct {
	URL       string `json:"url" example:"https://example.com"`
	ShortCode string `json:"shortCode" example:"abc123"`
}

// Redirect godoc
// @Summary 短码跳转
// @Description 公开接口，找到短码时 307 跳转到目标地址
// @Tags Redirect
// @Param   code  path  string  true  "短码"
// @Success 307 "跳转到目标地址"
// @Failure 404 {object} ErrorResponse "短码不存在"
// @Router /{code} [get]
func (h *LinkHandler) Redirect(c *gin.Context) {
	res, err := h.resolver.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.logger.Errorf("解析短码失败: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}
	if !res.Found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Link not found"})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, res.URL)
}

// ListLinks godoc
// @Summary 获取我的链接
// @Description 按最近修改时间倒序返回当前用户的全部链接
// @Tags Link
// @Security ApiKeyAuth
// @Produce  json
// @Success 200 {object} SuccessResponse{data=[]model.Link} "成功响应"
// @Failure 401 {object} FailureResponse "未认证"
// @Router /api/links [get]
func (h *LinkHandler) ListLinks(c *gin.Context) {
	userID, _ := auth.UserIDFromContext(c.Request.Context())
	links, err := h.lister.List(c.Request.Context(), userID)
	if err != nil {
		respondFailure(c, err)
		return
	}
	respondOK(c, http.StatusOK, links)
}

// CreateLink godoc
// @Summary 创建短链接
// @Description 为当前用户创建一个自定义短码的链接
// @Tags Link
// @Security ApiKeyAuth
// @Accept  json
// @Produce  json
// @Param   link  body   LinkRequest  true  "目标地址与短码"
// @Success 201 {object} SuccessResponse{data=model.Link} "成功响应"
// @Failure 400 {object} FailureResponse "参数无效"
// @Failure 401 {object} FailureResponse "未认证"
// @Failure 409 {object} FailureResponse "短码已被占用"
// @Failure 500 {object} FailureResponse "服务器内部错误"
// @Router /api/links [post]
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req LinkRequest
	if !h.bind(c, &req) {
		return
	}

	link, err := h.service.Create(c.Request.Context(), shortlink.CreateInput{URL: req.URL, ShortCode: req.ShortCode})
	if err != nil {
		respondFailure(c, err)
		return
	}
	respondOK(c, http.StatusCreated, link)
}

// UpdateLink godoc
// @Summary 编辑短链接
// @Description 修改当前用户拥有的链接；链接不存在或不属于当前用户时统一返回 404
// @Tags Link
// @Security ApiKeyAuth
// @Accept  json
// @Produce  json
// @Param   id    path   int          true  "链接 ID"
// @Param   link  body   LinkRequest  true  "目标地址与短码"
// @Success 200 {object} SuccessResponse{data=model.Link} "成功响应"
// @Failure 400 {object} FailureResponse "参数无效"
// @Failure 401 {object} FailureResponse "未认证"
// @Failure 404 {object} FailureResponse "不存在或无权限"
// @Failure 409 {object} FailureResponse "短码已被占用"
// @Router /api/links/{id} [put]
func (h *LinkHandler) UpdateLink(c *gin.Context) {
	var req LinkRequest
	if !h.bind(c, &req) {
		return
	}

	link, err := h.service.Edit(c.Request.Context(), shortlink.EditInput{
		ID:        shortlink.ParseID(c.Param("id")),
		URL:       req.URL,
		ShortCode: req.ShortCode,
	})
	if err != nil {
		respondFailure(c, err)
		return
	}
	respondOK(c, http.StatusOK, link)
}

// DeleteLink godoc
// @Summary 删除短链接
// @Description 删除当前用户拥有的链接；链接不存在或不属于当前用户时统一返回 404
// @Tags Link
// @Security ApiKeyAuth
// @Produce  json
// @Param   id  path  int  true  "链接 ID"
// @Success 200 {object} SuccessResponse "成功响应，data 为 null"
// @Failure 400 {object} FailureResponse "ID 无效"
// @Failure 401 {object} FailureResponse "未认证"
// @Failure 404 {object} FailureResponse "不存在或无权限"
// @Router /api/links/{id} [delete]
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), shortlink.ParseID(c.Param("id"))); err != nil {
		respondFailure(c, err)
		return
	}
	respondOK(c, http.StatusOK, nil)
}

// SuggestShortCode godoc
// @Summary 建议短码
// @Description 返回一个当前未被占用的随机短码，不做预留
// @Tags Link
// @Security ApiKeyAuth
// @Produce  json
// @Success 200 {object} SuccessResponse{data=SuggestionResponse} "成功响应"
// @Failure 401 {object} FailureResponse "未认证"
// @Failure 500 {object} FailureResponse "服务器内部错误"
// @Router /api/links/suggest [get]
func (h *LinkHandler) SuggestShortCode(c *gin.Context) {
	code, err := h.codes.Suggest(c.Request.Context())
	if err != nil {
		h.logger.Errorf("生成建议短码失败: %v", err)
		respondFailure(c, &shortlink.Error{Kind: shortlink.KindInternal, Message: "Could not suggest a short code", Err: err})
		return
	}
	respondOK(c, http.StatusOK, SuggestionResponse{ShortCode: code})
}

// bind 解析请求体；认证检查先于请求体格式检查
func (h *LinkHandler) bind(c *gin.Context, req *LinkRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if _, ok := auth.UserIDFromContext(c.Request.Context()); !ok {
			respondFailure(c, &shortlink.Error{Kind: shortlink.KindUnauthorized, Message: "Unauthorized"})
			return false
		}
		respondFailure(c, &shortlink.Error{Kind: shortlink.KindInvalidInput, Message: "Invalid request body"})
		return false
	}
	return true
}
