/*
 * @module service/init
 * @description 服务初始化模块，负责数据库连接、迁移和各资源引擎的装配
 * @architecture 分层架构 - 服务层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 应用启动时执行初始化流程
 * @rules 确保数据库连接和迁移完成后才提供API服务
 * @dependencies gorm.io/gorm, gorm.io/driver/postgres
 * @refs dev_docs/model.md
 */

package service

import (
	"fmt"
	"log"
	"os"

	"masterdata-service/service/database"
	"masterdata-service/service/masterdata"
	"masterdata-service/service/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB *gorm.DB

	GlobalKeyValueConfigService         *masterdata.Service[models.KeyValueConfig]
	GlobalListService                   *masterdata.Service[models.List]
	GlobalItemCategoryService           *masterdata.Service[models.ItemCategory]
	GlobalIntegrationService            *masterdata.Service[models.Integration]
	GlobalListIntegrationMappingService *masterdata.Service[models.ListIntegrationMapping]
)

// Init 初始化数据库连接、迁移和资源服务，由main在启动时调用
func Init() {
	initDatabase()
	runMigrations()
	initServices()
}

// initDatabase 初始化数据库连接
func initDatabase() {
	var dsn string

	// 优先使用DATABASE_URL环境变量
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dsn = databaseURL
	} else {
		// 使用分离的环境变量构建连接字符串
		host := getEnvWithDefault("DB_HOST", "localhost")
		port := getEnvWithDefault("DB_PORT", "5432")
		user := getEnvWithDefault("DB_USER", "postgres")
		password := getEnvWithDefault("DB_PASSWORD", "postgres")
		dbname := getEnvWithDefault("DB_NAME", "postgres")
		sslmode := getEnvWithDefault("DB_SSLMODE", "disable")
		schema := getEnvWithDefault("DB_SCHEMA", "public")

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			host, port, user, password, dbname, sslmode, schema)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	log.Println("数据库连接成功")
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// runMigrations 运行数据库迁移
func runMigrations() {
	if err := database.AutoMigrate(DB); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}
}

// initServices 装配各资源引擎。操作者标识来自配置而非硬编码，
// 作为所有写操作的created_by/modified_by
func initServices() {
	actor := getEnvWithDefault("SYSTEM_ACTOR", "system-admin")
	updater := database.NewPostgresEntityUpdater(DB)

	GlobalKeyValueConfigService = masterdata.NewService(DB, updater, actor, masterdata.KeyValueConfigResource())
	GlobalListService = masterdata.NewService(DB, updater, actor, masterdata.ListResource())
	GlobalItemCategoryService = masterdata.NewService(DB, updater, actor, masterdata.ItemCategoryResource())
	GlobalIntegrationService = masterdata.NewService(DB, updater, actor, masterdata.IntegrationResource())
	GlobalListIntegrationMappingService = masterdata.NewService(DB, updater, actor, masterdata.ListIntegrationMappingResource())

	log.Println("服务初始化完成")
}
