/*
 * @module api/controllers/list_integration_mapping_controller
 * @description 列表集成映射API控制器，处理HTTP请求和响应
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

// ListIntegrationMappingController 列表集成映射控制器
type ListIntegrationMappingController struct {
	service *masterdata.Service[models.ListIntegrationMapping]
}

// NewListIntegrationMappingController 创建列表集成映射控制器实例
func NewListIntegrationMappingController(service *masterdata.Service[models.ListIntegrationMapping]) *ListIntegrationMappingController {
	return &ListIntegrationMappingController{service: service}
}

// CreateListIntegrationMappingRequest 创建列表集成映射请求
type CreateListIntegrationMappingRequest struct {
	ListID        string `json:"listId" validate:"required,max=36"`
	IntegrationID string `json:"integrationId" validate:"required,max=36"`
}

// UpdateListIntegrationMappingRequest 更新列表集成映射请求
type UpdateListIntegrationMappingRequest struct {
	ListID        *string `json:"listId,omitempty" validate:"omitempty,max=36"`
	IntegrationID *string `json:"integrationId,omitempty" validate:"omitempty,max=36"`
}

func (req *UpdateListIntegrationMappingRequest) patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if req.ListID != nil {
		patch["listId"] = *req.ListID
	}
	if req.IntegrationID != nil {
		patch["integrationId"] = *req.IntegrationID
	}
	return patch
}

// CreateListIntegrationMapping 创建列表集成映射
// @Summary 创建列表集成映射
// @Description 创建新的列表集成映射，(listId, integrationId)组合在可见记录中唯一
// @Tags 列表集成映射
// @Accept json
// @Produce json
// @Param mapping body CreateListIntegrationMappingRequest true "映射信息"
// @Success 201 {object} models.ListIntegrationMapping
// @Failure 400 {object} string
// @Failure 500 {object} string
// @Router /listintegrationmapping [post]
func (c *ListIntegrationMappingController) CreateListIntegrationMapping(w http.ResponseWriter, r *http.Request) {
	var req CreateListIntegrationMappingRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	entity := &models.ListIntegrationMapping{ListID: req.ListID, IntegrationID: req.IntegrationID}
	WriteResult(w, r, c.service.Create(entity))
}

// FindAllListIntegrationMappings 分页查询列表集成映射
// @Summary 分页查询列表集成映射
// @Description 按过滤条件分页查询列表集成映射
// @Tags 列表集成映射
// @Accept json
// @Produce json
// @Param filter body map[string]interface{} true "过滤条件（pageNumber, limit, listId, integrationId）"
// @Success 200 {object} masterdata.Page
// @Failure 500 {object} string
// @Router /listintegrationmapping/all [post]
func (c *ListIntegrationMappingController) FindAllListIntegrationMappings(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}

	WriteResult(w, r, c.service.FindAll(masterdata.ParseListQuery(body)))
}

// GetListIntegrationMapping 按ID查询列表集成映射
// @Summary 按ID查询列表集成映射
// @Description 查询单个可见列表集成映射记录，不存在时返回空数据
// @Tags 列表集成映射
// @Produce json
// @Param id path string true "映射ID"
// @Success 200 {object} models.ListIntegrationMapping
// @Failure 500 {object} string
// @Router /listintegrationmapping/{id} [get]
func (c *ListIntegrationMappingController) GetListIntegrationMapping(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	WriteResult(w, r, c.service.FindUnique(id))
}

// UpdateListIntegrationMapping 更新列表集成映射
// @Summary 更新列表集成映射
// @Description 对可见列表集成映射记录应用部分更新
// @Tags 列表集成映射
// @Accept json
// @Produce json
// @Param id path string true "映射ID"
// @Param mapping body UpdateListIntegrationMappingRequest true "更新信息"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} string
// @Failure 500 {object} string
// @Router /listintegrationmapping/{id} [put]
func (c *ListIntegrationMappingController) UpdateListIntegrationMapping(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	var req UpdateListIntegrationMappingRequest
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

// DeleteListIntegrationMapping 删除列表集成映射
// @Summary 删除列表集成映射
// @Description 软删除列表集成映射记录，记录标记为inactive而不物理删除
// @Tags 列表集成映射
// @Produce json
// @Param id path string true "映射ID"
// @Success 200 {object} string
// @Failure 404 {object} string
// @Failure 500 {object} string
// @Router /listintegrationmapping/{id} [delete]
func (c *ListIntegrationMappingController) DeleteListIntegrationMapping(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	WriteResult(w, r, c.service.Delete(id))
}
