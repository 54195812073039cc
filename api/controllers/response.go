package controllers

import (
	"net/http"

	"masterdata-service/service/masterdata"

	"github.com/go-chi/render"
)

// WriteResult 按服务层信封写出HTTP响应：状态码取信封status，响应体为信封data
func WriteResult(w http.ResponseWriter, r *http.Request, result *masterdata.Result) {
	render.Status(r, result.Status)
	render.JSON(w, r, result.Data)
}

// WriteError 写出错误响应，payload原样作为响应体
func WriteError(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}
