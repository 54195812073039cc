/*
 * @module service/masterdata/filter
 * @description 动态过滤条件构建器，将请求过滤载荷转换为等值/IN查询条件
 * @architecture 构建器模式 - 无副作用的纯函数
 * @documentReference dev_docs/requirements.md
 * @stateFlow 过滤载荷解析 -> 字段白名单匹配 -> 条件集合输出
 * @rules 仅白名单内的字段生成条件；空值、空字符串和缺失字段直接跳过；
 *        序列值生成IN条件，标量值生成等值条件
 * @dependencies github.com/spf13/cast
 * @refs engine.go
 */

package masterdata

import "github.com/spf13/cast"

// ListQuery 分页查询请求，Filters中保留原始过滤载荷
type ListQuery struct {
	PageNumber int
	Limit      int
	Search     string
	Filters    map[string]interface{}
}

// Offset 计算分页偏移量，pageNumber和limit任一缺失时为0
func (q *ListQuery) Offset() int {
	if q.PageNumber > 0 && q.Limit > 0 {
		return (q.PageNumber - 1) * q.Limit
	}
	return 0
}

// ParseListQuery 从请求体解析分页查询参数，其余字段作为过滤载荷保留
func ParseListQuery(body map[string]interface{}) *ListQuery {
	q := &ListQuery{Filters: body}
	if body == nil {
		q.Filters = map[string]interface{}{}
		return q
	}
	if v, ok := body["pageNumber"]; ok {
		q.PageNumber = cast.ToInt(v)
	}
	if v, ok := body["limit"]; ok {
		q.Limit = cast.ToInt(v)
	}
	if v, ok := body["search"]; ok {
		q.Search = cast.ToString(v)
	}
	return q
}

// BuildConditions 根据字段白名单（JSON字段名 -> 数据库列名）从过滤载荷
// 构建查询条件。分页和搜索键不在白名单内，天然被排除。
func BuildConditions(filters map[string]interface{}, fields map[string]string) map[string]interface{} {
	conds := make(map[string]interface{})
	for name, column := range fields {
		value, ok := filters[name]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if v == "" {
				continue
			}
			conds[column] = v
		case []interface{}:
			if len(v) == 0 {
				continue
			}
			conds[column] = v
		case []string:
			if len(v) == 0 {
				continue
			}
			conds[column] = v
		default:
			conds[column] = value
		}
	}
	return conds
}
