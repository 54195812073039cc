/*
 * @module service/database/update_entity
 * @description updateEntity数据库过程的客户端实现，将补丁更新封送为函数调用
 *              并解码其带状态标签的结果
 * @architecture 数据访问层 - 外部过程适配器
 * @documentReference dev_docs/requirements.md
 * @stateFlow 补丁封送 -> 过程调用 -> 标签结果解码 -> 结果信封
 * @rules 过程内部实现不在本服务范围内，仅消费其调用/响应契约；
 *        无标签或格式异常的响应一律映射为500
 * @dependencies gorm.io/gorm, masterdata-service/service/masterdata
 * @refs service/masterdata/engine.go
 */

package database

import (
	"encoding/json"
	"net/http"

	"masterdata-service/service/masterdata"

	"gorm.io/gorm"
)

// MsgUnexpectedResponse updateEntity响应格式异常时的固定消息
const MsgUnexpectedResponse = "Unexpected response from updateEntity"

// PostgresEntityUpdater 通过数据库侧update_entity函数执行补丁更新
type PostgresEntityUpdater struct {
	db *gorm.DB
}

// NewPostgresEntityUpdater 创建updateEntity过程客户端
func NewPostgresEntityUpdater(db *gorm.DB) *PostgresEntityUpdater {
	return &PostgresEntityUpdater{db: db}
}

// ApplyPatch 调用update_entity函数对主键条件匹配的行应用补丁。
// 传输/数据库异常映射为携带异常消息的500信封。
func (u *PostgresEntityUpdater) ApplyPatch(table string, patch map[string]interface{}, key map[string]interface{}, actor string) *masterdata.Result {
	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return &masterdata.Result{Status: http.StatusInternalServerError, Data: err.Error()}
	}
	keyJSON, err := json.Marshal(key)
	if err != nil {
		return &masterdata.Result{Status: http.StatusInternalServerError, Data: err.Error()}
	}

	var raw string
	err = u.db.Raw("SELECT update_entity(?::text, ?::jsonb, ?::jsonb, ?::text)",
		table, string(patchJSON), string(keyJSON), actor).Scan(&raw).Error
	if err != nil {
		return &masterdata.Result{Status: http.StatusInternalServerError, Data: err.Error()}
	}

	return DecodeUpdateResult([]byte(raw))
}

// updateReply update_entity的标签响应：status标签加消息载荷
type updateReply struct {
	Status  *int            `json:"status"`
	Message json.RawMessage `json:"message"`
}

// DecodeUpdateResult 解码update_entity的响应。
// 400/500标签将消息作为错误载荷透出；成功标签将消息解析为更新后的行，
// 行载荷可能是再编码的JSON字符串，需要二次解码。
func DecodeUpdateResult(raw []byte) *masterdata.Result {
	var reply updateReply
	if err := json.Unmarshal(raw, &reply); err != nil || reply.Status == nil {
		return &masterdata.Result{Status: http.StatusInternalServerError, Data: MsgUnexpectedResponse}
	}

	switch *reply.Status {
	case http.StatusBadRequest, http.StatusInternalServerError:
		var msg string
		if err := json.Unmarshal(reply.Message, &msg); err != nil {
			msg = string(reply.Message)
		}
		return &masterdata.Result{Status: *reply.Status, Data: msg}
	default:
		row, ok := decodeRowPayload(reply.Message)
		if !ok {
			return &masterdata.Result{Status: http.StatusInternalServerError, Data: MsgUnexpectedResponse}
		}
		return &masterdata.Result{Status: *reply.Status, Data: row}
	}
}

// decodeRowPayload 解析成功响应中的行载荷，兼容对象和字符串编码两种形式
func decodeRowPayload(message json.RawMessage) (map[string]interface{}, bool) {
	var row map[string]interface{}
	if err := json.Unmarshal(message, &row); err == nil {
		return row, true
	}

	var encoded string
	if err := json.Unmarshal(message, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &row); err == nil {
			return row, true
		}
	}
	return nil, false
}
