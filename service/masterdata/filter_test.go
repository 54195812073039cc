/*
 * @module service/masterdata/filter_test
 * @description 过滤条件构建器单元测试
 * @architecture 测试层
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 过滤载荷构造 -> 条件构建 -> 结果验证
 * @rules 验证白名单匹配、空值跳过和序列值IN条件
 * @dependencies testing, stretchr/testify
 * @refs filter.go
 */

package masterdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBuildConditionsSkipsPaginationAndEmptyValues 测试分页键和空值被排除
func TestBuildConditionsSkipsPaginationAndEmptyValues(t *testing.T) {
	filters := map[string]interface{}{
		"name":       "x",
		"pageNumber": 2,
		"limit":      5,
		"search":     "",
		"other":      nil,
	}
	fields := map[string]string{"name": "name"}

	conds := BuildConditions(filters, fields)

	assert.Equal(t, map[string]interface{}{"name": "x"}, conds)
}

// TestBuildConditionsArrayValue 测试序列值生成IN条件
func TestBuildConditionsArrayValue(t *testing.T) {
	filters := map[string]interface{}{
		"status": []interface{}{"A", "P"},
	}
	fields := map[string]string{"status": "status"}

	conds := BuildConditions(filters, fields)

	assert.Equal(t, []interface{}{"A", "P"}, conds["status"])
}

// TestBuildConditionsColumnMapping 测试JSON字段名映射到列名
func TestBuildConditionsColumnMapping(t *testing.T) {
	filters := map[string]interface{}{
		"listId":  "list-1",
		"keyCode": "color",
	}
	fields := map[string]string{
		"listId":  "list_id",
		"keyCode": "key_code",
	}

	conds := BuildConditions(filters, fields)

	assert.Equal(t, "list-1", conds["list_id"])
	assert.Equal(t, "color", conds["key_code"])
	assert.Len(t, conds, 2)
}

// TestBuildConditionsEmptySlice 测试空序列被跳过
func TestBuildConditionsEmptySlice(t *testing.T) {
	filters := map[string]interface{}{
		"status": []interface{}{},
	}
	fields := map[string]string{"status": "status"}

	assert.Empty(t, BuildConditions(filters, fields))
}

// TestBuildConditionsDeterministic 测试同一输入的输出稳定
func TestBuildConditionsDeterministic(t *testing.T) {
	filters := map[string]interface{}{"name": "x", "listId": "l1"}
	fields := map[string]string{"name": "name", "listId": "list_id"}

	first := BuildConditions(filters, fields)
	second := BuildConditions(filters, fields)

	assert.Equal(t, first, second)
}

// TestParseListQueryPagination 测试分页参数解析和偏移量计算
func TestParseListQueryPagination(t *testing.T) {
	q := ParseListQuery(map[string]interface{}{
		"pageNumber": float64(3),
		"limit":      float64(10),
		"search":     "abc",
		"name":       "x",
	})

	assert.Equal(t, 3, q.PageNumber)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "abc", q.Search)
	assert.Equal(t, 20, q.Offset())
	assert.Equal(t, "x", q.Filters["name"])
}

// TestParseListQueryMissingPagination 测试缺失分页参数时偏移量为0
func TestParseListQueryMissingPagination(t *testing.T) {
	assert.Equal(t, 0, ParseListQuery(map[string]interface{}{"limit": 10}).Offset())
	assert.Equal(t, 0, ParseListQuery(map[string]interface{}{"pageNumber": 2}).Offset())
	assert.Equal(t, 0, ParseListQuery(nil).Offset())
}
