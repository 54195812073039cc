/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数
 * @architecture 测试基础设施 - 提供测试通用工具和数据工厂
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 测试环境初始化 -> 测试数据创建 -> 测试执行 -> 清理资源
 * @rules 提供可重用的测试工具，确保测试环境的一致性
 * @dependencies gorm, sqlite, time
 * @refs service/models
 */

package testutil

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"masterdata-service/service/masterdata"
	"masterdata-service/service/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB 测试数据库配置
type TestDB struct {
	DB *gorm.DB
}

// NewTestDB 创建测试数据库
func NewTestDB() *TestDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect test database: %v", err))
	}

	// 自动迁移所有模型
	err = db.AutoMigrate(
		&models.KeyValueConfig{},
		&models.List{},
		&models.ItemCategory{},
		&models.Integration{},
		&models.ListIntegrationMapping{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return &TestDB{DB: db}
}

// CleanDB 清理数据库
func (tdb *TestDB) CleanDB() {
	tables := []string{
		"key_value_configs",
		"lists",
		"item_categories",
		"integrations",
		"list_integration_mappings",
	}

	for _, table := range tables {
		tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table))
	}
}

// Close 关闭数据库连接
func (tdb *TestDB) Close() {
	if db, err := tdb.DB.DB(); err == nil {
		db.Close()
	}
}

// FakeEntityUpdater 测试用的updateEntity替身，直接通过gorm应用补丁，
// 并以数据库过程的成功信封格式返回更新后的行
type FakeEntityUpdater struct {
	DB *gorm.DB
	// Fail 非空时模拟过程返回的错误信封
	Fail *masterdata.Result
}

// ApplyPatch 应用补丁并返回更新后的行
func (f *FakeEntityUpdater) ApplyPatch(table string, patch map[string]interface{}, key map[string]interface{}, actor string) *masterdata.Result {
	if f.Fail != nil {
		return f.Fail
	}

	if err := f.DB.Table(table).Where(key).Updates(patch).Error; err != nil {
		return &masterdata.Result{Status: http.StatusInternalServerError, Data: err.Error()}
	}

	row := map[string]interface{}{}
	if err := f.DB.Table(table).Where(key).Take(&row).Error; err != nil {
		return &masterdata.Result{Status: http.StatusInternalServerError, Data: err.Error()}
	}
	return &masterdata.Result{Status: http.StatusOK, Data: row}
}

// TestDataFactory 测试数据工厂
type TestDataFactory struct {
	DB *gorm.DB
}

// NewTestDataFactory 创建测试数据工厂
func NewTestDataFactory(db *gorm.DB) *TestDataFactory {
	return &TestDataFactory{DB: db}
}

// ListOption 列表选项函数类型
type ListOption func(*models.List)

// CreateList 创建测试列表
func (f *TestDataFactory) CreateList(opts ...ListOption) *models.List {
	list := &models.List{
		ID:   generateID("list"),
		Name: "测试列表_" + generateSuffix(),
		RecordFields: models.RecordFields{
			RecStatus:  models.RecStatusActive,
			DataStatus: models.DataStatusActive,
			CreatedBy:  "test",
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		},
	}

	for _, opt := range opts {
		opt(list)
	}

	f.DB.Create(list)
	return list
}

// IntegrationOption 集成选项函数类型
type IntegrationOption func(*models.Integration)

// CreateIntegration 创建测试集成
func (f *TestDataFactory) CreateIntegration(opts ...IntegrationOption) *models.Integration {
	integration := &models.Integration{
		ID:   generateID("intg"),
		Name: "测试集成_" + generateSuffix(),
		RecordFields: models.RecordFields{
			RecStatus:  models.RecStatusActive,
			DataStatus: models.DataStatusActive,
			CreatedBy:  "test",
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		},
	}

	for _, opt := range opts {
		opt(integration)
	}

	f.DB.Create(integration)
	return integration
}

// KeyValueConfigOption 键值配置选项函数类型
type KeyValueConfigOption func(*models.KeyValueConfig)

// CreateKeyValueConfig 创建测试键值配置
func (f *TestDataFactory) CreateKeyValueConfig(opts ...KeyValueConfigOption) *models.KeyValueConfig {
	value := "测试值"
	config := &models.KeyValueConfig{
		ID:      generateID("kvc"),
		KeyCode: "test_key_" + generateSuffix(),
		Value:   &value,
		RecordFields: models.RecordFields{
			RecStatus:  models.RecStatusActive,
			DataStatus: models.DataStatusActive,
			CreatedBy:  "test",
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		},
	}

	for _, opt := range opts {
		opt(config)
	}

	f.DB.Create(config)
	return config
}

// generateID 生成带前缀的测试ID
func generateID(prefix string) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, time.Now().UnixNano(), rand.Intn(10000))
}

// generateSuffix 生成随机后缀
func generateSuffix() string {
	return fmt.Sprintf("%d", rand.Intn(1000000))
}
