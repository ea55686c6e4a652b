package model

// カートの1明細。数量は常に1で、同じ商品を追加すると明細が増える。
// （注文行の組み立てが「1明細=1行」を前提にしているため数量集約はしない）
type CartEntry struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
}

// CartTotal は明細の合計金額（最小通貨単位）。
func CartTotal(entries []CartEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Price
	}
	return total
}
