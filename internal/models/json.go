package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONRaw 任意结构 JSON 字段（数组或对象），按原文存取
type JSONRaw json.RawMessage

// Value 实现 driver.Valuer
func (j JSONRaw) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "null", nil
	}
	return string(j), nil
}

// Scan 实现 sql.Scanner
func (j *JSONRaw) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONRaw(v)
	default:
		return fmt.Errorf("unsupported json source type %T", value)
	}
	return nil
}

// MarshalJSON 原文输出
func (j JSONRaw) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON 原文保存
func (j *JSONRaw) UnmarshalJSON(data []byte) error {
	*j = append((*j)[:0], data...)
	return nil
}
