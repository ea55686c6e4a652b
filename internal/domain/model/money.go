package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice は "9.99" のような10進文字列を最小通貨単位のint64に変換する。
// floatを経由しない（丸め誤差対策）。
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("price is empty")
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if strings.HasPrefix(intPart, "-") {
		return 0, fmt.Errorf("invalid price %q: negative", s)
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("invalid price %q: too many decimal places", s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	cents, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}

	return units*100 + cents, nil
}

// FormatPrice は最小通貨単位を "9.99" 形式の文字列にする（表示・API境界用）。
func FormatPrice(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
