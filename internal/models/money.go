package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money 金额类型（定点十进制，序列化为两位小数字符串）
type Money struct {
	decimal.Decimal
}

// NewMoney 从 decimal 构造金额
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// NewMoneyFromString 从字符串构造金额
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid money value %q: %w", s, err)
	}
	return Money{Decimal: d}, nil
}

// MustMoney 从字符串构造金额，非法输入直接 panic（仅用于常量与测试）
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney 返回零金额
func ZeroMoney() Money {
	return Money{Decimal: decimal.Zero}
}

// Round2 四舍五入到两位小数
func (m Money) Round2() Money {
	return Money{Decimal: m.Decimal.Round(2)}
}

// AddMoney 金额相加
func (m Money) AddMoney(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal)}
}

// SubMoney 金额相减
func (m Money) SubMoney(other Money) Money {
	return Money{Decimal: m.Decimal.Sub(other.Decimal)}
}

// MulMoney 金额相乘
func (m Money) MulMoney(other Money) Money {
	return Money{Decimal: m.Decimal.Mul(other.Decimal)}
}

// IsNegative 金额是否为负
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// IsPositive 金额是否大于零
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// String 两位小数字符串表示
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Value 实现 driver.Valuer，按字符串落库保持精度
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.String(), nil
}

// Scan 实现 sql.Scanner
func (m *Money) Scan(value interface{}) error {
	if value == nil {
		m.Decimal = decimal.Zero
		return nil
	}
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("scan money from string failed: %w", err)
		}
		m.Decimal = d
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return fmt.Errorf("scan money from bytes failed: %w", err)
		}
		m.Decimal = d
	case float64:
		m.Decimal = decimal.NewFromFloat(v)
	case int64:
		m.Decimal = decimal.NewFromInt(v)
	default:
		return fmt.Errorf("unsupported money source type %T", value)
	}
	return nil
}

// MarshalJSON 序列化为两位小数字符串
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal.StringFixed(2))
}

// UnmarshalJSON 支持字符串与数字两种输入
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		m.Decimal = decimal.Zero
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("unmarshal money failed: %w", err)
	}
	m.Decimal = d
	return nil
}
