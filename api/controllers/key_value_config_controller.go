/*
 * @module api/controllers/key_value_config_controller
 * @description 键值配置API控制器，处理HTTP请求和响应
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

// KeyValueConfigController 键值配置控制器
type KeyValueConfigController struct {
	service *masterdata.Service[models.KeyValueConfig]
}

// NewKeyValueConfigController 创建键值配置控制器实例
func NewKeyValueConfigController(service *masterdata.Service[models.KeyValueConfig]) *KeyValueConfigController {
	return &KeyValueConfigController{service: service}
}

// CreateKeyValueConfigRequest 创建键值配置请求
type CreateKeyValueConfigRequest struct {
	KeyCode  string  `json:"keyCode" validate:"required,max=255"`
	Value    *string `json:"value,omitempty" validate:"omitempty,max=1000"`
	ParentID *string `json:"parentId,omitempty" validate:"omitempty,max=36"`
}

// UpdateKeyValueConfigRequest 更新键值配置请求
type UpdateKeyValueConfigRequest struct {
	KeyCode  *string `json:"keyCode,omitempty" validate:"omitempty,max=255"`
	Value    *string `json:"value,omitempty" validate:"omitempty,max=1000"`
	ParentID *string `json:"parentId,omitempty" validate:"omitempty,max=36"`
}

func (req *UpdateKeyValueConfigRequest) patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if req.KeyCode != nil {
		patch["keyCode"] = *req.KeyCode
	}
	if req.Value != nil {
		patch["value"] = *req.Value
	}
	if req.ParentID != nil {
		patch["parentId"] = *req.ParentID
	}
	return patch
}

// CreateKeyValueConfig 创建键值配置
// @Summary 创建键值配置
// @Description 创建新的键值配置，(keyCode, value)组合在可见记录中唯一
// @Tags 键值配置
// @Accept json
// @Produce json
// @Param config body CreateKeyValueConfigRequest true "键值配置信息"
// @Success 201 {object} models.KeyValueConfig
// @Failure 400 {object} string
// @Failure 500 {object} string
// @Router /master-data [post]
func (c *KeyValueConfigController) CreateKeyValueConfig(w http.ResponseWriter, r *http.Request) {
	var req CreateKeyValueConfigRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	entity := &models.KeyValueConfig{
		KeyCode:  req.KeyCode,
		Value:    req.Value,
		ParentID: req.ParentID,
	}
	WriteResult(w, r, c.service.Create(entity))
}

// FindAllKeyValueConfigs 分页查询键值配置
// @Summary 分页查询键值配置
// @Description 按过滤条件和搜索关键字分页查询键值配置
// @Tags 键值配置
// @Accept json
// @Produce json
// @Param filter body map[string]interface{} true "过滤条件（pageNumber, limit, search, keyCode, value, parentId）"
// @Success 200 {object} masterdata.Page
// @Failure 500 {object} string
// @Router /master-data/all [post]
func (c *KeyValueConfigController) FindAllKeyValueConfigs(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "请求参数格式错误: "+err.Error())
		return
	}

	WriteResult(w, r, c.service.FindAll(masterdata.ParseListQuery(body)))
}

// GetKeyValueConfig 按ID查询键值配置
// @Summary 按ID查询键值配置
// @Description 查询单个可见键值配置记录，不存在时返回空数据
// @Tags 键值配置
// @Produce json
// @Param id path string true "键值配置ID"
// @Success 200 {object} models.KeyValueConfig
// @Failure 500 {object} string
// @Router /master-data/{id} [get]
func (c *KeyValueConfigController) GetKeyValueConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	WriteResult(w, r, c.service.FindUnique(id))
}

// UpdateKeyValueConfig 更新键值配置
// @Summary 更新键值配置
// @Description 对可见键值配置记录应用部分更新
// @Tags 键值配置
// @Accept json
// @Produce json
// @Param id path string true "键值配置ID"
// @Param config body UpdateKeyValueConfigRequest true "更新信息"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} string
// @Failure 500 {object} string
// @Router /master-data/{id} [put]
func (c *KeyValueConfigController) UpdateKeyValueConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	var req UpdateKeyValueConfigRequest
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

// DeleteKeyValueConfig 删除键值配置
// @Summary 删除键值配置
// @Description 软删除键值配置记录，记录标记为inactive而不物理删除
// @Tags 键值配置
// @Produce json
// @Param id path string true "键值配置ID"
// @Success 200 {object} string
// @Failure 404 {object} string
// @Failure 500 {object} string
// @Router /master-data/{id} [delete]
func (c *KeyValueConfigController) DeleteKeyValueConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "ID参数不能为空")
		return
	}

	WriteResult(w, r, c.service.Delete(id))
}
