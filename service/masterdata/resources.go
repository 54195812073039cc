/*
 * @module service/masterdata/resources
 * @description 五类主数据资源的引擎配置：表名、唯一键、过滤字段、搜索字段和排序
 * @architecture 分层架构 - 业务服务层配置
 * @documentReference dev_docs/requirements.md
 * @stateFlow 服务初始化时按配置实例化各资源引擎
 * @rules 唯一性约束仅在可见记录范围内检查；过滤/补丁字段采用显式白名单
 * @dependencies masterdata-service/service/models
 * @refs engine.go, service/init.go
 */

package masterdata

import "masterdata-service/service/models"

// KeyValueConfigResource 键值配置资源，(keyCode, value)组合唯一
func KeyValueConfigResource() ResourceConfig[models.KeyValueConfig] {
	return ResourceConfig[models.KeyValueConfig]{
		Name:  "键值配置",
		Table: models.KeyValueConfig{}.TableName(),
		Record: func(m *models.KeyValueConfig) *models.RecordFields {
			return &m.RecordFields
		},
		UniqueKey: func(m *models.KeyValueConfig) map[string]interface{} {
			return map[string]interface{}{"key_code": m.KeyCode, "value": m.Value}
		},
		FilterFields: map[string]string{
			"keyCode":  "key_code",
			"value":    "value",
			"parentId": "parent_id",
		},
		SearchFields: []string{"key_code", "value"},
	}
}

// ListResource 列表资源，name唯一
func ListResource() ResourceConfig[models.List] {
	return ResourceConfig[models.List]{
		Name:  "列表",
		Table: models.List{}.TableName(),
		Record: func(m *models.List) *models.RecordFields {
			return &m.RecordFields
		},
		UniqueKey: func(m *models.List) map[string]interface{} {
			return map[string]interface{}{"name": m.Name}
		},
		FilterFields: map[string]string{
			"name": "name",
		},
		SearchFields: []string{"name"},
	}
}

// ItemCategoryResource 条目分类资源，(name, listId)组合唯一
func ItemCategoryResource() ResourceConfig[models.ItemCategory] {
	return ResourceConfig[models.ItemCategory]{
		Name:  "条目分类",
		Table: models.ItemCategory{}.TableName(),
		Record: func(m *models.ItemCategory) *models.RecordFields {
			return &m.RecordFields
		},
		UniqueKey: func(m *models.ItemCategory) map[string]interface{} {
			return map[string]interface{}{"name": m.Name, "list_id": m.ListID}
		},
		FilterFields: map[string]string{
			"name":   "name",
			"listId": "list_id",
		},
		SearchFields: []string{"name"},
	}
}

// IntegrationResource 集成资源，name唯一，列表按popularity降序
func IntegrationResource() ResourceConfig[models.Integration] {
	return ResourceConfig[models.Integration]{
		Name:  "集成",
		Table: models.Integration{}.TableName(),
		Record: func(m *models.Integration) *models.RecordFields {
			return &m.RecordFields
		},
		UniqueKey: func(m *models.Integration) map[string]interface{} {
			return map[string]interface{}{"name": m.Name}
		},
		FilterFields: map[string]string{
			"name":       "name",
			"popularity": "popularity",
		},
		SearchFields: []string{"name"},
		OrderBy:      "popularity DESC",
	}
}

// ListIntegrationMappingResource 列表集成映射资源，(listId, integrationId)组合唯一
func ListIntegrationMappingResource() ResourceConfig[models.ListIntegrationMapping] {
	return ResourceConfig[models.ListIntegrationMapping]{
		Name:  "列表集成映射",
		Table: models.ListIntegrationMapping{}.TableName(),
		Record: func(m *models.ListIntegrationMapping) *models.RecordFields {
			return &m.RecordFields
		},
		UniqueKey: func(m *models.ListIntegrationMapping) map[string]interface{} {
			return map[string]interface{}{"list_id": m.ListID, "integration_id": m.IntegrationID}
		},
		FilterFields: map[string]string{
			"listId":        "list_id",
			"integrationId": "integration_id",
		},
	}
}
