/*
 * @module api/controllers/integration_controller
 * @description 集成API控制器，处理HTTP请求和响应
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

// IntegrationController 集成控制器
type IntegrationController struct {
	service *masterdata.Service[models.Integration]
}

// NewIntegrationController 创建集成控制器实例
func NewIntegrationController(service *masterdata.Service[models.Integration]) *IntegrationController {
	return &IntegrationController{service: service}
}

// CreateIntegrationRequest 创建集成请求
type CreateIntegrationRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Popularity *int   `json:"popularity,omitempty" validate:"omitempty,gte=0"`
}

// UpdateIntegrationRequest 更新集成请求
type UpdateIntegrationRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Popularity *int    `json:"popularity,omitempty" validate:"omitempty,gte=0"`
}

func (req *UpdateIntegrationRequest) patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Popularity != nil {
		patch["popularity"] = *req.Popularity
	}
	return patch
}

// CreateIntegration 创建集成
// @Summary 创建集成
// @Description 创建新的集成，名称在可见记录中唯一
// @Tags 集成
// @Accept json
// @Produce json
// @Param integration body CreateIntegrationRequest true "集成信息"
// @Success 201 {object} models.Integration
// @Failure 400 {object} string
// @Failure 500 {object} string
// @Router /integration [post]
func (c *IntegrationController) CreateIntegration(w http.ResponseWriter, r *http.Request) {
	var req CreateIntegrationRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	entity := &models.Integration{Name: req.Name, Popularity: req.Popularity}
	WriteResult(w, r, c.service.Create(entity))
}

// FindAllIntegrations 分页查询集成
// @Summary 分页查询集成
// @Description 按过滤条件和搜索关键字分页查询集成，结果按popularity降序
// @Tags 集成
// @Accept json
// @Produce json
// @Param filter body map[string]interface{} true "过滤条件（pageNumber, limit, search, name, popularity）"
// @Success 200 {object} masterdata.Page
// @Failure 500 {object} string
// @Router /integration/all [post]
func (c *IntegrationController) FindAllIntegrations(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}

	WriteResult(w, r, c.service.FindAll(masterdata.ParseListQuery(body)))
}

// GetIntegration 按ID查询集成
// @Summary 按ID查询集成
// @Description 查询单个可见集成记录，不存在时返回空数据
// @Tags 集成
// @Produce json
// @Param id path string true "集成ID"
// @Success 200 {object} models.Integration
// @Failure 500 {object} string
// @Router /integration/{id} [get]
func (c *IntegrationController) GetIntegration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	WriteResult(w, r, c.service.FindUnique(id))
}

// UpdateIntegration 更新集成
// @Summary 更新集成
// @Description 对可见集成记录应用部分更新
// @Tags 集成
// @Accept json
// @Produce json
// @Param id path string true "集成ID"
// @Param integration body UpdateIntegrationRequest true "更新信息"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} string
// @Failure 500 {object} string
// @Router /integration/{id} [put]
func (c *IntegrationController) UpdateIntegration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	var req UpdateIntegrationRequest
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

// DeleteIntegration 删除集成
// @Summary 删除集成
// @Description 软删除集成记录，记录标记为inactive而不物理删除
// @Tags 集成
// @Produce json
// @Param id path string true "集成ID"
// @Success 200 {object} string
// @Failure 404 {object} string
// @Failure 500 {object} string
// @Router /integration/{id} [delete]
func (c *IntegrationController) DeleteIntegration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	WriteResult(w, r, c.service.Delete(id))
}
