/*
 * @module api/controllers/item_category_controller
 * @description 条目分类API控制器，处理HTTP请求和响应
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

// ItemCategoryController 条目分类控制器
type ItemCategoryController struct {
	service *masterdata.Service[models.ItemCategory]
}

// NewItemCategoryController 创建条目分类控制器实例
func NewItemCategoryController(service *masterdata.Service[models.ItemCategory]) *ItemCategoryController {
	return &ItemCategoryController{service: service}
}

// CreateItemCategoryRequest 创建条目分类请求
type CreateItemCategoryRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	ListID string `json:"listId" validate:"required,max=36"`
}

// UpdateItemCategoryRequest 更新条目分类请求
type UpdateItemCategoryRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=255"`
	ListID *string `json:"listId,omitempty" validate:"omitempty,max=36"`
}

func (req *UpdateItemCategoryRequest) patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.ListID != nil {
		patch["listId"] = *req.ListID
	}
	return patch
}

// CreateItemCategory 创建条目分类
// @Summary 创建条目分类
// @Description 创建新的条目分类，(name, listId)组合在可见记录中唯一
// @Tags 条目分类
// @Accept json
// @Produce json
// @Param category body CreateItemCategoryRequest true "条目分类信息"
// @Success 201 {object} models.ItemCategory
// @Failure 400 {object} string
// @Failure 500 {object} string
// @Router /item-categories [post]
func (c *ItemCategoryController) CreateItemCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateItemCategoryRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	entity := &models.ItemCategory{Name: req.Name, ListID: req.ListID}
	WriteResult(w, r, c.service.Create(entity))
}

// FindAllItemCategories 分页查询条目分类
// @Summary 分页查询条目分类
// @Description 按过滤条件和搜索关键字分页查询条目分类
// @Tags 条目分类
// @Accept json
// @Produce json
// @Param filter body map[string]interface{} true "过滤条件（pageNumber, limit, search, name, listId）"
// @Success 200 {object} masterdata.Page
// @Failure 500 {object} string
// @Router /item-categories/all [post]
func (c *ItemCategoryController) FindAllItemCategories(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}

	WriteResult(w, r, c.service.FindAll(masterdata.ParseListQuery(body)))
}

// GetItemCategory 按ID查询条目分类
// @Summary 按ID查询条目分类
// @Description 查询单个可见条目分类记录，不存在时返回空数据
// @Tags 条目分类
// @Produce json
// @Param id path string true "条目分类ID"
// @Success 200 {object} models.ItemCategory
// @Failure 500 {object} string
// @Router /item-categories/{id} [get]
func (c *ItemCategoryController) GetItemCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	WriteResult(w, r, c.service.FindUnique(id))
}

// UpdateItemCategory 更新条目分类
// @Summary 更新条目分类
// @Description 对可见条目分类记录应用部分更新
// @Tags 条目分类
// @Accept json
// @Produce json
// @Param id path string true "条目分类ID"
// @Param category body UpdateItemCategoryRequest true "更新信息"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} string
// @Failure 500 {object} string
// @Router /item-categories/{id} [put]
func (c *ItemCategoryController) UpdateItemCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	var req UpdateItemCategoryRequest
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

// DeleteItemCategory 删除条目分类
// @Summary 删除条目分类
// @Description 软删除条目分类记录，记录标记为inactive而不物理删除
// @Tags 条目分类
// @Produce json
// @Param id path string true "条目分类ID"
// @Success 200 {object} string
// @Failure 404 {object} string
// @Failure 500 {object} string
// @Router /item-categories/{id} [delete]
func (c *ItemCategoryController) DeleteItemCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	WriteResult(w, r, c.service.Delete(id))
}
