/*
 * @module service/masterdata/engine
 * @description 通用主数据CRUD引擎，按资源配置实例化，覆盖创建、分页查询、
 *              按ID查询、更新和软删除五个操作
 * @architecture 分层架构 - 业务服务层，泛型参数化的资源引擎
 * @documentReference dev_docs/requirements.md
 * @stateFlow 每个操作都是独立的请求/响应周期，无跨调用状态
 * @rules 所有读写仅作用于可见记录（rec_seq=0且rec_status/data_status为active）；
 *        软删除置rec_status为inactive；存储异常一律转换为内部错误信封
 * @dependencies gorm.io/gorm, masterdata-service/service/models
 * @refs filter.go, result.go
 */

package masterdata

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"masterdata-service/service/models"

	"gorm.io/gorm"
)

// EntityUpdater 数据库侧updateEntity过程的抽象。
// 给定表名、补丁载荷、主键条件和操作者标识，返回带状态码的结果信封。
type EntityUpdater interface {
	ApplyPatch(table string, patch map[string]interface{}, key map[string]interface{}, actor string) *Result
}

// ResourceConfig 资源配置，描述实体的表、唯一键、可过滤字段和可搜索字段
type ResourceConfig[T any] struct {
	Name         string                          // 资源名，用于日志
	Table        string                          // 数据库表名
	Record       func(*T) *models.RecordFields   // 记录状态字段访问器
	UniqueKey    func(*T) map[string]interface{} // 重复检查的唯一键条件
	FilterFields map[string]string               // 允许的过滤/补丁字段（JSON名 -> 列名）
	SearchFields []string                        // 模糊搜索列
	OrderBy      string                          // 可选排序，如 popularity DESC
}

// Service 通用主数据服务，按实体类型实例化
type Service[T any] struct {
	db      *gorm.DB
	updater EntityUpdater
	actor   string
	cfg     ResourceConfig[T]
}

// NewService 创建主数据服务实例，actor为写操作记录的系统操作者标识
func NewService[T any](db *gorm.DB, updater EntityUpdater, actor string, cfg ResourceConfig[T]) *Service[T] {
	return &Service[T]{db: db, updater: updater, actor: actor, cfg: cfg}
}

// ActiveRecords 可见记录范围：rec_seq=0 且 rec_status/data_status 均为active
func ActiveRecords(db *gorm.DB) *gorm.DB {
	return db.Where("rec_seq = ? AND rec_status = ? AND data_status = ?",
		0, models.RecStatusActive, models.DataStatusActive)
}

// Create 创建记录。先按唯一键检查可见记录中是否已存在，
// 存在则返回400，不存在则初始化记录状态字段后插入。
func (s *Service[T]) Create(entity *T) *Result {
	slog.Info("创建"+s.cfg.Name, "table", s.cfg.Table)

	var existing T
	err := ActiveRecords(s.db.Model(new(T))).Where(s.cfg.UniqueKey(entity)).First(&existing).Error
	if err == nil {
		slog.Info(s.cfg.Name+"已存在，拒绝创建", "table", s.cfg.Table)
		return BadRequest(MsgAlreadyExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("检查"+s.cfg.Name+"重复失败", "error", err)
		return InternalError()
	}

	rec := s.cfg.Record(entity)
	rec.RecSeq = 0
	rec.RecStatus = models.RecStatusActive
	rec.DataStatus = models.DataStatusActive
	rec.CreatedBy = s.actor

	if err := s.db.Create(entity).Error; err != nil {
		slog.Error("创建"+s.cfg.Name+"失败", "error", err)
		return InternalError()
	}

	slog.Info("创建"+s.cfg.Name+"成功", "table", s.cfg.Table)
	return Created(entity)
}

// FindAll 分页查询。过滤条件、模糊搜索和可见记录范围按AND组合；
// 页数据与总数并发获取，二者都完成后组装分页元数据。
func (s *Service[T]) FindAll(q *ListQuery) *Result {
	slog.Info("查询"+s.cfg.Name+"列表", "pageNumber", q.PageNumber, "limit", q.Limit, "search", q.Search)

	rows := make([]T, 0)
	var total int64
	var findErr, countErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		tx := s.listScope(q).Offset(q.Offset())
		if q.Limit > 0 {
			tx = tx.Limit(q.Limit)
		}
		if s.cfg.OrderBy != "" {
			tx = tx.Order(s.cfg.OrderBy)
		}
		findErr = tx.Find(&rows).Error
	}()
	go func() {
		defer wg.Done()
		countErr = s.listScope(q).Count(&total).Error
	}()
	wg.Wait()

	if findErr != nil || countErr != nil {
		slog.Error("查询"+s.cfg.Name+"列表失败", "findError", findErr, "countError", countErr)
		return InternalError()
	}

	slog.Info("查询"+s.cfg.Name+"列表成功", "count", len(rows), "total", total)
	return OK(&Page{
		Data: rows,
		Metadata: PageMetadata{
			PageNumber: q.PageNumber,
			Limit:      q.Limit,
			TotalCount: total,
		},
	})
}

// listScope 构建一次分页查询的条件范围。每次调用返回独立的查询语句，
// 供页数据查询和总数查询在各自的goroutine中使用。
func (s *Service[T]) listScope(q *ListQuery) *gorm.DB {
	tx := ActiveRecords(s.db.Model(new(T)))
	if conds := BuildConditions(q.Filters, s.cfg.FilterFields); len(conds) > 0 {
		tx = tx.Where(conds)
	}
	if term := strings.TrimSpace(q.Search); term != "" && len(s.cfg.SearchFields) > 0 {
		pattern := "%" + strings.ToLower(term) + "%"
		or := s.db.Session(&gorm.Session{NewDB: true})
		for i, column := range s.cfg.SearchFields {
			clause := fmt.Sprintf("LOWER(%s) LIKE ?", column)
			if i == 0 {
				or = or.Where(clause, pattern)
			} else {
				or = or.Or(clause, pattern)
			}
		}
		tx = tx.Where(or)
	}
	return tx
}

// FindUnique 按ID查询可见记录。记录不存在时返回200和空数据，
// 与更新/删除的404行为不同，保持既有接口语义。
func (s *Service[T]) FindUnique(id string) *Result {
	slog.Info("查询"+s.cfg.Name, "id", id)

	var row T
	err := ActiveRecords(s.db).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OK(nil)
	}
	if err != nil {
		slog.Error("查询"+s.cfg.Name+"失败", "id", id, "error", err)
		return InternalError()
	}

	return OK(&row)
}

// Update 更新记录。目标可见记录不存在时返回404，否则将补丁
// （限白名单字段，附加modified_by）委托给updateEntity过程执行。
func (s *Service[T]) Update(id string, patch map[string]interface{}) *Result {
	slog.Info("更新"+s.cfg.Name, "id", id)

	var row T
	err := ActiveRecords(s.db).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound()
	}
	if err != nil {
		slog.Error("查询"+s.cfg.Name+"更新目标失败", "id", id, "error", err)
		return InternalError()
	}

	columns := BuildConditions(patch, s.cfg.FilterFields)
	columns["modified_by"] = s.actor

	result := s.updater.ApplyPatch(s.cfg.Table, columns, map[string]interface{}{"id": id}, s.actor)
	slog.Info("更新"+s.cfg.Name+"完成", "id", id, "status", result.Status)
	return result
}

// Delete 软删除记录。目标可见记录不存在时返回404，
// 否则在可见记录范围内将rec_status置为inactive。
func (s *Service[T]) Delete(id string) *Result {
	slog.Info("删除"+s.cfg.Name, "id", id)

	var row T
	err := ActiveRecords(s.db).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound()
	}
	if err != nil {
		slog.Error("查询"+s.cfg.Name+"删除目标失败", "id", id, "error", err)
		return InternalError()
	}

	err = ActiveRecords(s.db.Model(new(T))).Where("id = ?", id).Updates(map[string]interface{}{
		"rec_status":  models.RecStatusInactive,
		"modified_by": s.actor,
	}).Error
	if err != nil {
		slog.Error("删除"+s.cfg.Name+"失败", "id", id, "error", err)
		return InternalError()
	}

	slog.Info("删除"+s.cfg.Name+"成功", "id", id)
	return OK(MsgDeleted)
}
