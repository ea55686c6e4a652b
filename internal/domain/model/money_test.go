package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice_OK(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"9.99", 999},
		{"0.02", 2},
		{"10", 1000},
		{"10.5", 1050},
		{"0", 0},
		{" 19.99 ", 1999},
		{".99", 99},
	}

	for _, c := range cases {
		got, err := model.ParsePrice(c.in)
		assert.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "9.999", "9.9a", "-1.00", "1,00"} {
		_, err := model.ParsePrice(in)
		assert.Error(t, err, in)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "9.99", model.FormatPrice(999))
	assert.Equal(t, "0.02", model.FormatPrice(2))
	assert.Equal(t, "10.00", model.FormatPrice(1000))
	assert.Equal(t, "0.00", model.FormatPrice(0))
}

// 9.99 + 9.99 + 0.02 がちょうど 20.00 になること（浮動小数点を経由しない）
func TestCartTotal_ExactDecimal(t *testing.T) {
	entries := []model.CartEntry{
		{ProductID: "1", Title: "A", Price: 999},
		{ProductID: "2", Title: "B", Price: 999},
		{ProductID: "3", Title: "C", Price: 2},
	}

	total := model.CartTotal(entries)
	assert.Equal(t, int64(2000), total)
	assert.Equal(t, "20.00", model.FormatPrice(total))
}

func TestCartTotal_Empty(t *testing.T) {
	assert.Equal(t, int64(0), model.CartTotal(nil))
}
