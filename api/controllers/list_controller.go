/*
 * @module api/controllers/list_controller
 * @description 列表资源API控制器，处理HTTP请求和响应
 * @architecture MVC架构 - 控制器层
 * @documentReference dev_docs/requirements.md
 * @stateFlow HTTP请求处理流程
 * @rules 请求体先通过DTO约束校验再进入服务层，响应按服务信封写出
 * @dependencies masterdata-service/service/masterdata, github.com/go-chi/render
 * @refs service/masterdata/engine.go
 */

package controllers

import (
	"net/http"

	"masterdata-service/service/masterdata"
	"masterdata-service/service/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// ListController 列表资源控制器
type ListController struct {
	service *masterdata.Service[models.List]
}

// NewListController 创建列表资源控制器实例
func NewListController(service *masterdata.Service[models.List]) *ListController {
	return &ListController{service: service}
}

// CreateListRequest 创建列表请求
type CreateListRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// UpdateListRequest 更新列表请求
type UpdateListRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=255"`
}

func (req *UpdateListRequest) patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	return patch
}

// CreateList 创建列表
// @Summary 创建列表
// @Description 创建新的列表，名称在可见记录中唯一
// @Tags 列表
// @Accept json
// @Produce json
// @Param list body CreateListRequest true "列表信息"
// @Success 201 {object} models.List
// @Failure 400 {object} string
// @Failure 500 {object} string
// @Router /lists [post]
func (c *ListController) CreateList(w http.ResponseWriter, r *http.Request) {
	var req CreateListRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	WriteResult(w, r, c.service.Create(&models.List{Name: req.Name}))
}

// FindAllLists 分页查询列表
// @Summary 分页查询列表
// @Description 按过滤条件和搜索关键字分页查询列表
// @Tags 列表
// @Accept json
// @Produce json
// @Param filter body map[string]interface{} true "过滤条件（pageNumber, limit, search, name）"
// @Success 200 {object} masterdata.Page
// @Failure 500 {object} string
// @Router /lists/all [post]
func (c *ListController) FindAllLists(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}

	WriteResult(w, r, c.service.FindAll(masterdata.ParseListQuery(body)))
}

// GetList 按ID查询列表
// @Summary 按ID查询列表
// @Description 查询单个可见列表记录，不存在时返回空数据
// @Tags 列表
// @Produce json
// @Param id path string true "列表ID"
// @Success 200 {object} models.List
// @Failure 500 {object} string
// @Router /lists/{id} [get]
func (c *ListController) GetList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	WriteResult(w, r, c.service.FindUnique(id))
}

// UpdateList 更新列表
// @Summary 更新列表
// @Description 对可见列表记录应用部分更新
// @Tags 列表
// @Accept json
// @Produce json
// @Param id path string true "列表ID"
// @Param list body UpdateListRequest true "更新信息"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} string
// @Failure 500 {object} string
// @Router /lists/{id} [put]
func (c *ListController) UpdateList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	var req UpdateListRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	WriteResult(w, r, c.service.Update(id, req.patch()))
}

// DeleteList 删除列表
// @Summary 删除列表
// @Description 软删除列表记录，记录标记为inactive而不物理删除
// @Tags 列表
// @Produce json
// @Param id path string true "列表ID"
// @Success 200 {object} string
// @Failure 404 {object} string
// @Failure 500 {object} string
// @Router /lists/{id} [delete]
func (c *ListController) DeleteList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	WriteResult(w, r, c.service.Delete(id))
}
