/*
 * @module service/masterdata/result
 * @description 服务层统一结果信封与分页元数据定义
 * @architecture 分层架构 - 业务服务层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 服务方法 -> 结果信封 -> 控制器按信封状态码写出响应
 * @rules 每个服务方法都是封闭边界，异常不外溢，统一返回{status, data}信封
 * @dependencies net/http
 * @refs api/controllers/response.go
 */

package masterdata

import "net/http"

// 固定响应消息
const (
	MsgAlreadyExists = "Already Exists"
	MsgNotFound      = "Not Found"
	MsgDeleted       = "Deleted successfully"
	MsgInternalError = "Internal Server Error "
)

// Result 服务层结果信封，status为HTTP状态码，data为响应载荷
type Result struct {
	Status int         `json:"status"`
	Data   interface{} `json:"data"`
}

// PageMetadata 分页元数据
type PageMetadata struct {
	PageNumber int   `json:"pageNumber"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
}

// Page 分页查询结果
type Page struct {
	Data     interface{}  `json:"data"`
	Metadata PageMetadata `json:"metadata"`
}

// OK 成功信封
func OK(data interface{}) *Result {
	return &Result{Status: http.StatusOK, Data: data}
}

// Created 创建成功信封
func Created(data interface{}) *Result {
	return &Result{Status: http.StatusCreated, Data: data}
}

// BadRequest 请求错误信封
func BadRequest(data interface{}) *Result {
	return &Result{Status: http.StatusBadRequest, Data: data}
}

// NotFound 目标不存在信封
func NotFound() *Result {
	return &Result{Status: http.StatusNotFound, Data: MsgNotFound}
}

// InternalError 内部错误信封，固定消息
func InternalError() *Result {
	return &Result{Status: http.StatusInternalServerError, Data: MsgInternalError}
}
