/*
 * @module service/models/master_data
 * @description 主数据实体模型定义，包括键值配置、列表、条目分类、集成和列表集成映射
 * @architecture 数据模型层
 * @documentReference dev_docs/model.md
 * @stateFlow 主数据记录生命周期管理（创建 -> 更新 -> 软删除）
 * @rules 所有实体共享记录状态字段，软删除通过rec_status标记，不做物理删除
 * @dependencies gorm.io/gorm, github.com/google/uuid
 * @refs dev_docs/requirements.md
 */

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 记录生命周期状态
const (
	RecStatusActive   = "active"
	RecStatusPending  = "pending"
	RecStatusInactive = "inactive"
	RecStatusDeleted  = "deleted"
)

// DataStatusActive 数据状态，创建时置为active
const DataStatusActive = "active"

// RecordFields 所有主数据实体共享的记录状态字段
// rec_seq为0表示逻辑记录的当前版本；可见记录的判定条件是
// rec_seq = 0 且 rec_status = active 且 data_status = active
type RecordFields struct {
	RecSeq     int       `json:"recSeq" gorm:"not null;default:0"`
	RecStatus  string    `json:"recStatus" gorm:"not null;default:'active';size:20"`
	DataStatus string    `json:"dataStatus" gorm:"not null;default:'active';size:20"`
	CreatedBy  string    `json:"createdBy" gorm:"not null;size:100"`
	ModifiedBy string    `json:"modifiedBy" gorm:"size:100"`
	CreatedAt  time.Time `json:"createdAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// KeyValueConfig 键值配置模型，parent_id支持层级分组
type KeyValueConfig struct {
	ID       string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	KeyCode  string  `json:"keyCode" gorm:"not null;size:255;index"`
	Value    *string `json:"value,omitempty" gorm:"size:1000"`
	ParentID *string `json:"parentId,omitempty" gorm:"type:varchar(36);index"`
	RecordFields
}

// TableName 指定表名
func (KeyValueConfig) TableName() string {
	return "key_value_configs"
}

// List 列表模型
type List struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"not null;size:255;index"`
	RecordFields
}

// TableName 指定表名
func (List) TableName() string {
	return "lists"
}

// ItemCategory 条目分类模型，归属于某个列表
type ItemCategory struct {
	ID     string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name   string `json:"name" gorm:"not null;size:255;index"`
	ListID string `json:"listId" gorm:"not null;type:varchar(36);index"`
	RecordFields
}

// TableName 指定表名
func (ItemCategory) TableName() string {
	return "item_categories"
}

// Integration 集成模型，popularity用于列表排序
type Integration struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string `json:"name" gorm:"not null;size:255;index"`
	Popularity *int   `json:"popularity,omitempty"`
	RecordFields
}

// TableName 指定表名
func (Integration) TableName() string {
	return "integrations"
}

// ListIntegrationMapping 列表与集成的映射模型
type ListIntegrationMapping struct {
	ID            string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ListID        string `json:"listId" gorm:"not null;type:varchar(36);index"`
	IntegrationID string `json:"integrationId" gorm:"not null;type:varchar(36);index"`
	RecordFields
}

// TableName 指定表名
func (ListIntegrationMapping) TableName() string {
	return "list_integration_mappings"
}

// BeforeCreate GORM钩子，创建前生成UUID
func (m *KeyValueConfig) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

func (m *List) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

func (m *ItemCategory) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

func (m *Integration) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

func (m *ListIntegrationMapping) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
