/*
 * @module service/masterdata/engine_test
 * @description 主数据CRUD引擎单元测试
 * @architecture 测试层 - 基于内存数据库验证业务逻辑
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 测试数据准备 -> 服务方法调用 -> 信封与存储状态验证
 * @rules 覆盖重复检查、分页、软删除、404语义和端到端场景
 * @dependencies testing, stretchr/testify, masterdata-service/testutil
 * @refs engine.go, resources.go
 */

package masterdata_test

import (
	"net/http"
	"testing"

	"masterdata-service/service/masterdata"
	"masterdata-service/service/models"
	"masterdata-service/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testActor = "system-admin"

// recordingUpdater 包装FakeEntityUpdater并记录是否被调用
type recordingUpdater struct {
	inner  *testutil.FakeEntityUpdater
	called bool
}

func (r *recordingUpdater) ApplyPatch(table string, patch map[string]interface{}, key map[string]interface{}, actor string) *masterdata.Result {
	r.called = true
	return r.inner.ApplyPatch(table, patch, key, actor)
}

func newListService(t *testing.T) (*masterdata.Service[models.List], *testutil.TestDB, *recordingUpdater) {
	t.Helper()
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)
	updater := &recordingUpdater{inner: &testutil.FakeEntityUpdater{DB: tdb.DB}}
	svc := masterdata.NewService(tdb.DB, updater, testActor, masterdata.ListResource())
	return svc, tdb, updater
}

// TestCreateSetsRecordFields 测试创建成功时记录状态字段的初始化
func TestCreateSetsRecordFields(t *testing.T) {
	svc, _, _ := newListService(t)

	result := svc.Create(&models.List{Name: "Groceries"})

	require.Equal(t, http.StatusCreated, result.Status)
	row, ok := result.Data.(*models.List)
	require.True(t, ok)
	assert.NotEmpty(t, row.ID)
	assert.Equal(t, 0, row.RecSeq)
	assert.Equal(t, models.RecStatusActive, row.RecStatus)
	assert.Equal(t, models.DataStatusActive, row.DataStatus)
	assert.Equal(t, testActor, row.CreatedBy)
}

// TestCreateDuplicateRejected 测试重复创建返回400且不插入新行
func TestCreateDuplicateRejected(t *testing.T) {
	svc, tdb, _ := newListService(t)

	require.Equal(t, http.StatusCreated, svc.Create(&models.List{Name: "Groceries"}).Status)

	result := svc.Create(&models.List{Name: "Groceries"})
	assert.Equal(t, http.StatusBadRequest, result.Status)
	assert.Equal(t, masterdata.MsgAlreadyExists, result.Data)

	var count int64
	tdb.DB.Model(&models.List{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

// TestCreateDuplicateOnlyAmongActive 测试重复检查仅覆盖可见记录
func TestCreateDuplicateOnlyAmongActive(t *testing.T) {
	svc, _, _ := newListService(t)

	require.Equal(t, http.StatusCreated, svc.Create(&models.List{Name: "Groceries"}).Status)
	created := svc.FindAll(&masterdata.ListQuery{Filters: map[string]interface{}{}})
	require.Equal(t, http.StatusOK, created.Status)

	first := created.Data.(*masterdata.Page).Data.([]models.List)[0]
	require.Equal(t, http.StatusOK, svc.Delete(first.ID).Status)

	// 同名记录已软删除，重新创建应成功
	assert.Equal(t, http.StatusCreated, svc.Create(&models.List{Name: "Groceries"}).Status)
}

// TestKeyValueConfigDuplicateKey 测试键值配置按(keyCode, value)组合判重
func TestKeyValueConfigDuplicateKey(t *testing.T) {
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)
	svc := masterdata.NewService(tdb.DB, &testutil.FakeEntityUpdater{DB: tdb.DB}, testActor, masterdata.KeyValueConfigResource())

	red := "red"
	blue := "blue"
	require.Equal(t, http.StatusCreated, svc.Create(&models.KeyValueConfig{KeyCode: "color", Value: &red}).Status)

	// 同keyCode不同value不算重复
	assert.Equal(t, http.StatusCreated, svc.Create(&models.KeyValueConfig{KeyCode: "color", Value: &blue}).Status)
	// 同keyCode同value重复
	assert.Equal(t, http.StatusBadRequest, svc.Create(&models.KeyValueConfig{KeyCode: "color", Value: &red}).Status)
}

// TestFindAllEmptyStore 测试空库分页查询返回空数据和完整元数据
func TestFindAllEmptyStore(t *testing.T) {
	svc, _, _ := newListService(t)

	result := svc.FindAll(&masterdata.ListQuery{PageNumber: 1, Limit: 10, Filters: map[string]interface{}{}})

	require.Equal(t, http.StatusOK, result.Status)
	page, ok := result.Data.(*masterdata.Page)
	require.True(t, ok)
	rows, ok := page.Data.([]models.List)
	require.True(t, ok)
	assert.Empty(t, rows)
	assert.Equal(t, 1, page.Metadata.PageNumber)
	assert.Equal(t, 10, page.Metadata.Limit)
	assert.EqualValues(t, 0, page.Metadata.TotalCount)
}

// TestFindAllPagination 测试分页偏移和总数
func TestFindAllPagination(t *testing.T) {
	svc, tdb, _ := newListService(t)
	factory := testutil.NewTestDataFactory(tdb.DB)
	for i := 0; i < 5; i++ {
		factory.CreateList()
	}

	result := svc.FindAll(&masterdata.ListQuery{PageNumber: 2, Limit: 2, Filters: map[string]interface{}{}})

	require.Equal(t, http.StatusOK, result.Status)
	page := result.Data.(*masterdata.Page)
	assert.Len(t, page.Data.([]models.List), 2)
	assert.EqualValues(t, 5, page.Metadata.TotalCount)

	// 最后一页只剩一条
	result = svc.FindAll(&masterdata.ListQuery{PageNumber: 3, Limit: 2, Filters: map[string]interface{}{}})
	page = result.Data.(*masterdata.Page)
	assert.Len(t, page.Data.([]models.List), 1)
}

// TestFindAllFilterAndSearch 测试等值过滤与模糊搜索
func TestFindAllFilterAndSearch(t *testing.T) {
	svc, tdb, _ := newListService(t)
	factory := testutil.NewTestDataFactory(tdb.DB)
	factory.CreateList(func(l *models.List) { l.Name = "Groceries" })
	factory.CreateList(func(l *models.List) { l.Name = "Hardware" })

	result := svc.FindAll(&masterdata.ListQuery{Filters: map[string]interface{}{"name": "Groceries"}})
	page := result.Data.(*masterdata.Page)
	require.Len(t, page.Data.([]models.List), 1)
	assert.Equal(t, "Groceries", page.Data.([]models.List)[0].Name)

	// 大小写不敏感的子串搜索
	result = svc.FindAll(&masterdata.ListQuery{Search: "groc", Filters: map[string]interface{}{}})
	page = result.Data.(*masterdata.Page)
	require.Len(t, page.Data.([]models.List), 1)
	assert.EqualValues(t, 1, page.Metadata.TotalCount)
}

// TestFindAllIgnoresInactiveRows 测试软删除的行不出现在查询结果中
func TestFindAllIgnoresInactiveRows(t *testing.T) {
	svc, tdb, _ := newListService(t)
	factory := testutil.NewTestDataFactory(tdb.DB)
	kept := factory.CreateList()
	removed := factory.CreateList()

	require.Equal(t, http.StatusOK, svc.Delete(removed.ID).Status)

	result := svc.FindAll(&masterdata.ListQuery{Filters: map[string]interface{}{}})
	page := result.Data.(*masterdata.Page)
	rows := page.Data.([]models.List)
	require.Len(t, rows, 1)
	assert.Equal(t, kept.ID, rows[0].ID)
	assert.EqualValues(t, 1, page.Metadata.TotalCount)
}

// TestIntegrationOrderedByPopularity 测试集成列表按popularity降序
func TestIntegrationOrderedByPopularity(t *testing.T) {
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)
	svc := masterdata.NewService(tdb.DB, &testutil.FakeEntityUpdater{DB: tdb.DB}, testActor, masterdata.IntegrationResource())
	factory := testutil.NewTestDataFactory(tdb.DB)

	low, high := 1, 9
	factory.CreateIntegration(func(i *models.Integration) { i.Name = "low"; i.Popularity = &low })
	factory.CreateIntegration(func(i *models.Integration) { i.Name = "high"; i.Popularity = &high })

	result := svc.FindAll(&masterdata.ListQuery{Filters: map[string]interface{}{}})
	rows := result.Data.(*masterdata.Page).Data.([]models.Integration)
	require.Len(t, rows, 2)
	assert.Equal(t, "high", rows[0].Name)
	assert.Equal(t, "low", rows[1].Name)
}

// TestFindUniqueMissingReturnsOKNull 测试按ID查询不存在的记录返回200和空数据
func TestFindUniqueMissingReturnsOKNull(t *testing.T) {
	svc, _, _ := newListService(t)

	result := svc.FindUnique("missing-id")

	assert.Equal(t, http.StatusOK, result.Status)
	assert.Nil(t, result.Data)
}

// TestUpdateMissingReturnsNotFound 测试更新不存在的记录返回404且不调用更新过程
func TestUpdateMissingReturnsNotFound(t *testing.T) {
	svc, _, updater := newListService(t)

	result := svc.Update("missing-id", map[string]interface{}{"name": "x"})

	assert.Equal(t, http.StatusNotFound, result.Status)
	assert.Equal(t, masterdata.MsgNotFound, result.Data)
	assert.False(t, updater.called)
}

// TestDeleteMissingReturnsNotFound 测试删除不存在的记录返回404
func TestDeleteMissingReturnsNotFound(t *testing.T) {
	svc, _, _ := newListService(t)

	result := svc.Delete("missing-id")

	assert.Equal(t, http.StatusNotFound, result.Status)
	assert.Equal(t, masterdata.MsgNotFound, result.Data)
}

// TestDeleteSoftDeletes 测试删除将rec_status置为inactive而不物理删除
func TestDeleteSoftDeletes(t *testing.T) {
	svc, tdb, _ := newListService(t)
	factory := testutil.NewTestDataFactory(tdb.DB)
	list := factory.CreateList()

	result := svc.Delete(list.ID)
	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, masterdata.MsgDeleted, result.Data)

	// 行仍然在表中，但rec_status已变为inactive
	var row models.List
	require.NoError(t, tdb.DB.First(&row, "id = ?", list.ID).Error)
	assert.Equal(t, models.RecStatusInactive, row.RecStatus)
	assert.Equal(t, testActor, row.ModifiedBy)
}

// TestListLifecycle 端到端场景：创建 -> 重复创建 -> 查询 -> 更新 -> 删除 -> 再查询
func TestListLifecycle(t *testing.T) {
	svc, _, _ := newListService(t)

	created := svc.Create(&models.List{Name: "Groceries"})
	require.Equal(t, http.StatusCreated, created.Status)
	id := created.Data.(*models.List).ID

	dup := svc.Create(&models.List{Name: "Groceries"})
	assert.Equal(t, http.StatusBadRequest, dup.Status)
	assert.Equal(t, masterdata.MsgAlreadyExists, dup.Data)

	found := svc.FindUnique(id)
	require.Equal(t, http.StatusOK, found.Status)
	assert.Equal(t, "Groceries", found.Data.(*models.List).Name)

	updated := svc.Update(id, map[string]interface{}{"name": "Veggies"})
	require.Equal(t, http.StatusOK, updated.Status)
	row, ok := updated.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Veggies", row["name"])

	deleted := svc.Delete(id)
	require.Equal(t, http.StatusOK, deleted.Status)
	assert.Equal(t, masterdata.MsgDeleted, deleted.Data)

	gone := svc.FindUnique(id)
	assert.Equal(t, http.StatusOK, gone.Status)
	assert.Nil(t, gone.Data)
}

// TestUpdatePatchRestrictedToAllowedFields 测试补丁仅保留白名单字段并附加操作者
func TestUpdatePatchRestrictedToAllowedFields(t *testing.T) {
	svc, tdb, _ := newListService(t)
	factory := testutil.NewTestDataFactory(tdb.DB)
	list := factory.CreateList()

	result := svc.Update(list.ID, map[string]interface{}{
		"name":      "Renamed",
		"recStatus": "deleted", // 不在白名单内，应被忽略
	})
	require.Equal(t, http.StatusOK, result.Status)

	var row models.List
	require.NoError(t, tdb.DB.First(&row, "id = ?", list.ID).Error)
	assert.Equal(t, "Renamed", row.Name)
	assert.Equal(t, models.RecStatusActive, row.RecStatus)
	assert.Equal(t, testActor, row.ModifiedBy)
}

// TestUpdateSurfacesExecutorError 测试更新过程的错误信封原样透出
func TestUpdateSurfacesExecutorError(t *testing.T) {
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)
	updater := &testutil.FakeEntityUpdater{
		DB:   tdb.DB,
		Fail: &masterdata.Result{Status: http.StatusBadRequest, Data: "bad"},
	}
	svc := masterdata.NewService(tdb.DB, updater, testActor, masterdata.ListResource())
	factory := testutil.NewTestDataFactory(tdb.DB)
	list := factory.CreateList()

	result := svc.Update(list.ID, map[string]interface{}{"name": "x"})

	assert.Equal(t, http.StatusBadRequest, result.Status)
	assert.Equal(t, "bad", result.Data)
}

// TestMappingDuplicateByPair 测试映射按(listId, integrationId)组合判重
func TestMappingDuplicateByPair(t *testing.T) {
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)
	svc := masterdata.NewService(tdb.DB, &testutil.FakeEntityUpdater{DB: tdb.DB}, testActor, masterdata.ListIntegrationMappingResource())

	require.Equal(t, http.StatusCreated, svc.Create(&models.ListIntegrationMapping{ListID: "l1", IntegrationID: "i1"}).Status)
	assert.Equal(t, http.StatusCreated, svc.Create(&models.ListIntegrationMapping{ListID: "l1", IntegrationID: "i2"}).Status)
	assert.Equal(t, http.StatusBadRequest, svc.Create(&models.ListIntegrationMapping{ListID: "l1", IntegrationID: "i1"}).Status)
}
