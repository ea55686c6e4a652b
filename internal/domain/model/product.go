package model

// ShopifyのカタログAPIから取得した商品。
// Priceは最小通貨単位（セント）で保持する。
type Product struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"`
}
