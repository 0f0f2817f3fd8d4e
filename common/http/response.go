package http

import "net/http"

// Response 统一响应结构
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// 预定义的响应码
const (
	CodeSuccess       = 0     // 成功
	CodeError         = -1    // 通用错误
	CodeInvalidParam  = 10001 // 参数错误
	CodeNotFound      = 10004 // 资源不存在
	CodeServerError   = 10005 // 服务器内部错误
	CodeUnprocessable = 10006 // 参数合法但无法完成
	CodeTooMany       = 10007 // 请求过于频繁
)

// 预定义的响应消息
const (
	MsgSuccess       = "success"
	MsgInvalidParam  = "invalid parameters"
	MsgNotFound      = "not found"
	MsgServerError   = "internal server error"
	MsgUnprocessable = "unprocessable"
	MsgTooMany       = "too many requests"
)

// NewResponse 创建响应
func NewResponse(code int, message string, data any) *Response {
	return &Response{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// Success 成功响应
func (c *Context) Success(data any) {
	c.JSON(http.StatusOK, NewResponse(CodeSuccess, MsgSuccess, data))
}

// Created 201 创建成功
func (c *Context) Created(data any) {
	c.JSON(http.StatusCreated, NewResponse(CodeSuccess, MsgSuccess, data))
}

// BadRequest 400 错误请求
func (c *Context) BadRequest(message string) {
	if message == "" {
		message = MsgInvalidParam
	}
	c.JSON(http.StatusBadRequest, NewResponse(CodeInvalidParam, message, nil))
}

// NotFound 404 资源不存在
func (c *Context) NotFound(message string) {
	if message == "" {
		message = MsgNotFound
	}
	c.JSON(http.StatusNotFound, NewResponse(CodeNotFound, message, nil))
}

// Unprocessable 422 请求合法但无法满足
func (c *Context) Unprocessable(message string) {
	if message == "" {
		message = MsgUnprocessable
	}
	c.JSON(http.StatusUnprocessableEntity, NewResponse(CodeUnprocessable, message, nil))
}

// TooManyRequests 429 触发限流
func (c *Context) TooManyRequests(message string) {
	if message == "" {
		message = MsgTooMany
	}
	c.JSON(http.StatusTooManyRequests, NewResponse(CodeTooMany, message, nil))
}

// InternalServerError 500 服务器内部错误
func (c *Context) InternalServerError(message string) {
	if message == "" {
		message = MsgServerError
	}
	c.JSON(http.StatusInternalServerError, NewResponse(CodeServerError, message, nil))
}
