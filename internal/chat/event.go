package chat

import "fmt"

// チャット基盤側のユーザー。
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// DisplayName は運用者向け通知などに使う表示名。
func (u User) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		name = u.Username
	}
	if name == "" {
		name = fmt.Sprintf("user:%d", u.ID)
	}
	return name
}

// Event はチャット基盤から届くイベントの閉じた直和型。
// 取りうる型は SessionStart / Command / Action / PaymentConfirmed のみ。
type Event interface {
	From() User
}

// /start（初回コマンド）
type SessionStart struct {
	User User
}

// /products /cart /checkout などのテキストコマンド
type Command struct {
	User User
	Name string
}

// インラインボタン押下。Tokenはボタンに紐づけた商品ID。
type Action struct {
	User       User
	Token      string
	CallbackID string
}

// 決済完了通知。PayloadはCheckout時に発行した不透明トークン。
type PaymentConfirmed struct {
	User    User
	Payload string
}

func (e SessionStart) From() User     { return e.User }
func (e Command) From() User          { return e.User }
func (e Action) From() User           { return e.User }
func (e PaymentConfirmed) From() User { return e.User }
