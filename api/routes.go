/*
 * @module api/routes
 * @description API路由配置模块，负责初始化和配置所有HTTP路由
 * @architecture RESTful API架构
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 无状态HTTP请求处理
 * @rules 遵循RESTful API设计规范，统一错误处理和响应格式
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/cors, github.com/go-chi/render
 * @refs dev_docs/model.md
 */

package api

import (
	"masterdata-service/api/controllers"
	"masterdata-service/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// InitRoute 初始化所有API路由
func InitRoute(r *chi.Mux) {
	// 基础中间件
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// CORS配置
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 健康检查
	healthController := controllers.NewHealthController()
	r.Get("/health", healthController.Health)
	r.Get("/ready", healthController.Ready)

	// 键值配置
	r.Route("/master-data", func(r chi.Router) {
		c := controllers.NewKeyValueConfigController(service.GlobalKeyValueConfigService)
		r.Post("/", c.CreateKeyValueConfig)
		r.Post("/all", c.FindAllKeyValueConfigs)
		r.Get("/{id}", c.GetKeyValueConfig)
		r.Put("/{id}", c.UpdateKeyValueConfig)
		r.Delete("/{id}", c.DeleteKeyValueConfig)
	})

	// 列表
	r.Route("/lists", func(r chi.Router) {
		c := controllers.NewListController(service.GlobalListService)
		r.Post("/", c.CreateList)
		r.Post("/all", c.FindAllLists)
		r.Get("/{id}", c.GetList)
		r.Put("/{id}", c.UpdateList)
		r.Delete("/{id}", c.DeleteList)
	})

	// 条目分类
	r.Route("/item-categories", func(r chi.Router) {
		c := controllers.NewItemCategoryController(service.GlobalItemCategoryService)
		r.Post("/", c.CreateItemCategory)
		r.Post("/all", c.FindAllItemCategories)
		r.Get("/{id}", c.GetItemCategory)
		r.Put("/{id}", c.UpdateItemCategory)
		r.Delete("/{id}", c.DeleteItemCategory)
	})

	// 集成
	r.Route("/integration", func(r chi.Router) {
		c := controllers.NewIntegrationController(service.GlobalIntegrationService)
		r.Post("/", c.CreateIntegration)
		r.Post("/all", c.FindAllIntegrations)
		r.Get("/{id}", c.GetIntegration)
		r.Put("/{id}", c.UpdateIntegration)
		r.Delete("/{id}", c.DeleteIntegration)
	})

	// 列表集成映射
	r.Route("/listintegrationmapping", func(r chi.Router) {
		c := controllers.NewListIntegrationMappingController(service.GlobalListIntegrationMappingService)
		r.Post("/", c.CreateListIntegrationMapping)
		r.Post("/all", c.FindAllListIntegrationMappings)
		r.Get("/{id}", c.GetListIntegrationMapping)
		r.Put("/{id}", c.UpdateListIntegrationMapping)
		r.Delete("/{id}", c.DeleteListIntegrationMapping)
	})
}
